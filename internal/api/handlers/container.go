package handlers

import (
	"github.com/linskybing/design-review/internal/application"
)

// Options carries the settings handlers need beyond the services.
type Options struct {
	AppName       string
	AppVersion    string
	StoreDriver   string
	PublicBaseURL string
	Ping          Pinger
}

type Handlers struct {
	System     *SystemHandler
	Project    *ProjectHandler
	Drawing    *DrawingHandler
	Annotation *AnnotationHandler
	Workflow   *WorkflowHandler
	User       *UserHandler
	File       *FileHandler
	Audit      *AuditHandler
}

func New(svc *application.Services, opts Options) *Handlers {
	return &Handlers{
		System:     NewSystemHandler(opts.AppName, opts.AppVersion, opts.StoreDriver, opts.Ping),
		Project:    NewProjectHandler(svc.Drawing),
		Drawing:    NewDrawingHandler(svc.Drawing, svc.User, svc.Review),
		Annotation: NewAnnotationHandler(svc.Annotation, svc.User),
		Workflow:   NewWorkflowHandler(svc.Workflow),
		User:       NewUserHandler(svc.User),
		File:       NewFileHandler(svc.Review, opts.PublicBaseURL),
		Audit:      NewAuditHandler(svc.Audit),
	}
}
