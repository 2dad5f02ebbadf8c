package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/linskybing/design-review/internal/domain/annotation"
	"github.com/linskybing/design-review/internal/repository"
)

type AnnotationService struct {
	Repos *repository.Repos
	Audit *AuditService
	locks *keyedMutex
}

func NewAnnotationService(repos *repository.Repos, audit *AuditService) *AnnotationService {
	return &AnnotationService{
		Repos: repos,
		Audit: audit,
		locks: newKeyedMutex(),
	}
}

// ListAnnotations returns a drawing's annotations in insertion order,
// optionally narrowed to one version.
func (s *AnnotationService) ListAnnotations(drawingID string, versionID *string) ([]annotation.Annotation, error) {
	return s.Repos.Annotation.ListAnnotations(annotation.ListFilter{
		DrawingID: drawingID,
		VersionID: versionID,
	})
}

func (s *AnnotationService) GetAnnotation(id string) (annotation.Annotation, error) {
	a, err := s.Repos.Annotation.GetAnnotationByID(id)
	if err != nil {
		return annotation.Annotation{}, lookupErr(err, ErrAnnotationNotFound)
	}
	return a, nil
}

// CreateAnnotation resolves drawing, version and author in that order
// before validating the markup itself.
func (s *AnnotationService) CreateAnnotation(ctx context.Context, in annotation.CreateInput) (annotation.Annotation, error) {
	d, err := s.Repos.Drawing.GetDrawingByID(in.DrawingID)
	if err != nil {
		return annotation.Annotation{}, lookupErr(err, ErrDrawingNotFound)
	}
	if _, ok := d.FindVersion(in.VersionID); !ok {
		return annotation.Annotation{}, ErrVersionNotFound
	}
	if _, err := s.Repos.User.GetUserByID(in.AuthorID); err != nil {
		return annotation.Annotation{}, lookupErr(err, ErrUserNotFound)
	}
	if !in.Type.Valid() {
		return annotation.Annotation{}, fmt.Errorf("%w: %q", ErrInvalidType, in.Type)
	}
	if strings.TrimSpace(in.Content) == "" {
		return annotation.Annotation{}, ErrEmptyContent
	}
	if !in.Position.Valid() {
		return annotation.Annotation{}, ErrInvalidPosition
	}

	now := Now()
	a := annotation.Annotation{
		ID:        NewID(kindAnnotation),
		DrawingID: in.DrawingID,
		VersionID: in.VersionID,
		Type:      in.Type,
		AuthorID:  in.AuthorID,
		Content:   in.Content,
		Position:  in.Position,
		Resolved:  false,
		CreatedAt: now,
		UpdatedAt: now,
		Replies:   []annotation.Reply{},
	}
	if err := s.Repos.Annotation.CreateAnnotation(&a); err != nil {
		return annotation.Annotation{}, fmt.Errorf("create annotation: %w", err)
	}

	s.Audit.Record(ctx, ActionCreate, ResourceAnnotation, a.ID, nil, a,
		fmt.Sprintf("Created %s annotation on %s", a.Type, a.VersionID))
	return a, nil
}

func (s *AnnotationService) Resolve(ctx context.Context, id string) (annotation.Annotation, error) {
	return s.setResolved(ctx, id, true)
}

func (s *AnnotationService) Unresolve(ctx context.Context, id string) (annotation.Annotation, error) {
	return s.setResolved(ctx, id, false)
}

// setResolved only writes, and only bumps updated_at, when the flag changes.
func (s *AnnotationService) setResolved(ctx context.Context, id string, resolved bool) (annotation.Annotation, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	a, err := s.GetAnnotation(id)
	if err != nil {
		return annotation.Annotation{}, err
	}
	if a.Resolved == resolved {
		return a, nil
	}

	old := a
	a.Resolved = resolved
	a.UpdatedAt = touch(a.UpdatedAt)
	if err := s.Repos.Annotation.UpdateAnnotation(&a); err != nil {
		return annotation.Annotation{}, lookupErr(err, ErrAnnotationNotFound)
	}

	msg := "Resolved annotation " + id
	if !resolved {
		msg = "Reopened annotation " + id
	}
	s.Audit.Record(ctx, ActionUpdate, ResourceAnnotation, id, old, a, msg)
	return a, nil
}

// DeleteAnnotation removes the annotation and its whole reply thread.
func (s *AnnotationService) DeleteAnnotation(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	old, err := s.GetAnnotation(id)
	if err != nil {
		return err
	}
	if err := s.Repos.Annotation.DeleteAnnotation(id); err != nil {
		return lookupErr(err, ErrAnnotationNotFound)
	}

	s.Audit.Record(ctx, ActionDelete, ResourceAnnotation, id, old, nil, "Deleted annotation "+id)
	return nil
}

// AddReply appends a reply to the annotation's thread and returns the
// updated annotation.
func (s *AnnotationService) AddReply(ctx context.Context, id, content, authorID string) (annotation.Annotation, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	a, err := s.GetAnnotation(id)
	if err != nil {
		return annotation.Annotation{}, err
	}
	if _, err := s.Repos.User.GetUserByID(authorID); err != nil {
		return annotation.Annotation{}, lookupErr(err, ErrUserNotFound)
	}
	if strings.TrimSpace(content) == "" {
		return annotation.Annotation{}, ErrEmptyContent
	}

	now := touch(a.UpdatedAt)
	reply := annotation.Reply{
		ID:           replyID(a.ID, len(a.Replies)+1),
		AnnotationID: a.ID,
		AuthorID:     authorID,
		Content:      content,
		CreatedAt:    now,
	}
	a.UpdatedAt = now
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Annotation.CreateReply(&reply); err != nil {
			return lookupErr(err, ErrAnnotationNotFound)
		}
		if err := r.Annotation.UpdateAnnotation(&a); err != nil {
			return lookupErr(err, ErrAnnotationNotFound)
		}
		return nil
	})
	if err != nil {
		return annotation.Annotation{}, err
	}
	a.Replies = append(a.Replies, reply)

	s.Audit.Record(ctx, ActionCreate, ResourceReply, reply.ID, nil, reply, "Replied to annotation "+id)
	return a, nil
}
