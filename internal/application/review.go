package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/storage"
	"go.uber.org/zap"
)

// ReviewService ties the registry to the blob store: files are stored
// first and a version only points at a blob that exists.
type ReviewService struct {
	Users    *UserService
	Drawings *DrawingService
	Audit    *AuditService
	Blobs    storage.BlobStore
	log      *zap.Logger
}

func NewReviewService(users *UserService, drawings *DrawingService, audit *AuditService, blobs storage.BlobStore, log *zap.Logger) *ReviewService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReviewService{
		Users:    users,
		Drawings: drawings,
		Audit:    audit,
		Blobs:    blobs,
		log:      log,
	}
}

// Upload is a file handed to the review service.
type Upload struct {
	Reader   io.Reader
	Size     int64
	Filename string
}

// StoreFile keeps an uploaded file and returns where it is served from.
func (s *ReviewService) StoreFile(ctx context.Context, file Upload) (storage.Object, error) {
	if file.Size == 0 {
		return storage.Object{}, ErrEmptyFile
	}
	obj, err := s.Blobs.Store(ctx, file.Reader, file.Size, file.Filename)
	if err != nil {
		return storage.Object{}, fmt.Errorf("store file: %w", err)
	}
	s.Audit.Record(ctx, ActionUpload, ResourceFile, obj.Key, nil, obj, "Uploaded "+file.Filename)
	return obj, nil
}

// OpenFile streams a stored file. The caller closes the reader.
func (s *ReviewService) OpenFile(ctx context.Context, key string) (io.ReadCloser, storage.Object, error) {
	rc, obj, err := s.Blobs.Open(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.Object{}, ErrFileNotFound
		}
		return nil, storage.Object{}, fmt.Errorf("open file: %w", err)
	}
	return rc, obj, nil
}

// UploadVersion stores the file and appends it as the drawing's next
// version. A failed append removes the stored blob again.
func (s *ReviewService) UploadVersion(ctx context.Context, drawingID string, file Upload, changesSummary *string, createdBy string) (drawing.Version, error) {
	if _, err := s.Drawings.GetDrawing(drawingID); err != nil {
		return drawing.Version{}, err
	}
	if _, err := s.Users.GetUser(createdBy); err != nil {
		return drawing.Version{}, err
	}

	obj, err := s.StoreFile(ctx, file)
	if err != nil {
		return drawing.Version{}, err
	}

	v, err := s.Drawings.AppendVersion(ctx, drawingID, obj.URL, changesSummary, createdBy)
	if err != nil {
		if derr := s.Blobs.Delete(ctx, obj.Key); derr != nil {
			s.log.Error("failed to remove orphaned blob",
				zap.String("key", obj.Key),
				zap.String("drawing_id", drawingID),
				zap.Error(derr),
			)
		}
		return drawing.Version{}, err
	}
	return v, nil
}
