package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Project    ProjectRepo
	Drawing    DrawingRepo
	Annotation AnnotationRepo
	Workflow   WorkflowRepo
	Audit      AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Project:    NewProjectRepo(db),
		Drawing:    NewDrawingRepo(db),
		Annotation: NewAnnotationRepo(db),
		Workflow:   NewWorkflowRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

// DB returns the underlying connection, or nil for stores that are not
// backed by a database.
func (r *Repos) DB() *gorm.DB {
	return r.db
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Project:    r.Project.WithTx(tx),
		Drawing:    r.Drawing.WithTx(tx),
		Annotation: r.Annotation.WithTx(tx),
		Workflow:   r.Workflow.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside a database transaction. Stores without a database
// run fn directly; callers serialize those writes with aggregate locks.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
