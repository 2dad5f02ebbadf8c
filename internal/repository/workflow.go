package repository

import (
	"github.com/linskybing/design-review/internal/domain/workflow"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkflowRepo interface {
	ListWorkflows() ([]workflow.ReviewWorkflow, error)
	ListWorkflowsByDrawing(drawingID string) ([]workflow.ReviewWorkflow, error)
	GetWorkflowByID(id string) (workflow.ReviewWorkflow, error)
	GetWorkflowForUpdate(id string) (workflow.ReviewWorkflow, error)
	GetWorkflowByVersion(versionID string) (workflow.ReviewWorkflow, error)
	CreateWorkflow(w *workflow.ReviewWorkflow) error
	UpdateWorkflow(w *workflow.ReviewWorkflow) error
	WithTx(tx *gorm.DB) WorkflowRepo
}

type DBWorkflowRepo struct {
	db *gorm.DB
}

func NewWorkflowRepo(db *gorm.DB) *DBWorkflowRepo {
	return &DBWorkflowRepo{
		db: db,
	}
}

func (r *DBWorkflowRepo) ListWorkflows() ([]workflow.ReviewWorkflow, error) {
	var workflows []workflow.ReviewWorkflow
	err := r.db.Order("created_at ASC, id ASC").Find(&workflows).Error
	return workflows, err
}

func (r *DBWorkflowRepo) ListWorkflowsByDrawing(drawingID string) ([]workflow.ReviewWorkflow, error) {
	var workflows []workflow.ReviewWorkflow
	err := r.db.Where("drawing_id = ?", drawingID).Order("created_at ASC, id ASC").Find(&workflows).Error
	return workflows, err
}

func (r *DBWorkflowRepo) GetWorkflowByID(id string) (workflow.ReviewWorkflow, error) {
	var w workflow.ReviewWorkflow
	err := r.db.Where("id = ?", id).First(&w).Error
	return w, err
}

func (r *DBWorkflowRepo) GetWorkflowForUpdate(id string) (workflow.ReviewWorkflow, error) {
	var w workflow.ReviewWorkflow
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&w).Error
	return w, err
}

func (r *DBWorkflowRepo) GetWorkflowByVersion(versionID string) (workflow.ReviewWorkflow, error) {
	var w workflow.ReviewWorkflow
	err := r.db.Where("version_id = ?", versionID).First(&w).Error
	return w, err
}

func (r *DBWorkflowRepo) CreateWorkflow(w *workflow.ReviewWorkflow) error {
	return r.db.Create(w).Error
}

func (r *DBWorkflowRepo) UpdateWorkflow(w *workflow.ReviewWorkflow) error {
	res := r.db.Model(&workflow.ReviewWorkflow{}).
		Where("id = ?", w.ID).
		Updates(map[string]any{
			"status":       w.Status,
			"completed_at": w.CompletedAt,
			"updated_at":   w.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBWorkflowRepo) WithTx(tx *gorm.DB) WorkflowRepo {
	if tx == nil {
		return r
	}
	return &DBWorkflowRepo{
		db: tx,
	}
}
