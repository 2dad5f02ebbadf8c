package application

import (
	"github.com/linskybing/design-review/internal/repository"
	"github.com/linskybing/design-review/internal/storage"
	"go.uber.org/zap"
)

type Services struct {
	Audit      *AuditService
	User       *UserService
	Drawing    *DrawingService
	Annotation *AnnotationService
	Workflow   *WorkflowService
	Review     *ReviewService
}

func New(repos *repository.Repos, blobs storage.BlobStore, log *zap.Logger) *Services {
	audit := NewAuditService(repos, log)
	users := NewUserService(repos)
	drawings := NewDrawingService(repos, audit)
	return &Services{
		Audit:      audit,
		User:       users,
		Drawing:    drawings,
		Annotation: NewAnnotationService(repos, audit),
		Workflow:   NewWorkflowService(repos, audit),
		Review:     NewReviewService(users, drawings, audit, blobs, log),
	}
}
