package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/domain/workflow"
	"github.com/linskybing/design-review/internal/repository"
	"gorm.io/gorm"
)

type WorkflowService struct {
	Repos *repository.Repos
	Audit *AuditService
	locks *keyedMutex
}

func NewWorkflowService(repos *repository.Repos, audit *AuditService) *WorkflowService {
	return &WorkflowService{
		Repos: repos,
		Audit: audit,
		locks: newKeyedMutex(),
	}
}

func (s *WorkflowService) ListWorkflows(drawingID *string) ([]workflow.ReviewWorkflow, error) {
	if drawingID != nil {
		return s.Repos.Workflow.ListWorkflowsByDrawing(*drawingID)
	}
	return s.Repos.Workflow.ListWorkflows()
}

func (s *WorkflowService) GetWorkflow(id string) (workflow.ReviewWorkflow, error) {
	w, err := s.Repos.Workflow.GetWorkflowByID(id)
	if err != nil {
		return workflow.ReviewWorkflow{}, lookupErr(err, ErrWorkflowNotFound)
	}
	return w, nil
}

// CreateWorkflow opens the review of one drawing version. A version is
// reviewed by at most one workflow.
func (s *WorkflowService) CreateWorkflow(ctx context.Context, input workflow.CreateWorkflowDTO) (workflow.ReviewWorkflow, error) {
	status := drawing.StatusInReview
	if input.Status != nil {
		status = *input.Status
	}
	if status != drawing.StatusDraft && status != drawing.StatusInReview {
		return workflow.ReviewWorkflow{}, ErrInvalidInitStatus
	}

	unlock := s.locks.Lock(input.VersionID)
	defer unlock()

	d, err := s.Repos.Drawing.GetDrawingByID(input.DrawingID)
	if err != nil {
		return workflow.ReviewWorkflow{}, lookupErr(err, ErrDrawingNotFound)
	}
	if _, ok := d.FindVersion(input.VersionID); !ok {
		return workflow.ReviewWorkflow{}, ErrVersionNotFound
	}
	reviewers := make([]string, 0, len(input.ReviewerIDs))
	for _, id := range input.ReviewerIDs {
		if _, err := s.Repos.User.GetUserByID(id); err != nil {
			return workflow.ReviewWorkflow{}, lookupErr(err, ErrUserNotFound)
		}
		reviewers = append(reviewers, id)
	}
	_, err = s.Repos.Workflow.GetWorkflowByVersion(input.VersionID)
	switch {
	case err == nil:
		return workflow.ReviewWorkflow{}, ErrWorkflowExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return workflow.ReviewWorkflow{}, fmt.Errorf("lookup workflow: %w", err)
	}

	now := Now()
	w := workflow.ReviewWorkflow{
		ID:          NewID(kindWorkflow),
		DrawingID:   input.DrawingID,
		VersionID:   input.VersionID,
		Status:      status,
		ReviewerIDs: reviewers,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Workflow.CreateWorkflow(&w); err != nil {
			return fmt.Errorf("create workflow: %w", err)
		}
		if err := r.Drawing.UpdateVersionStatus(w.VersionID, w.Status); err != nil {
			return lookupErr(err, ErrVersionNotFound)
		}
		return nil
	})
	if err != nil {
		return workflow.ReviewWorkflow{}, err
	}

	s.Audit.Record(ctx, ActionCreate, ResourceWorkflow, w.ID, nil, w,
		fmt.Sprintf("Opened review of %s", w.VersionID))
	return w, nil
}

// SetStatus moves a workflow along the review state machine and mirrors
// the new status onto the reviewed version in the same transaction.
func (s *WorkflowService) SetStatus(ctx context.Context, id string, status drawing.ReviewStatus) (workflow.ReviewWorkflow, error) {
	if !status.Valid() {
		return workflow.ReviewWorkflow{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	var old, updated workflow.ReviewWorkflow
	err := s.Repos.ExecTx(func(r *repository.Repos) error {
		w, err := r.Workflow.GetWorkflowForUpdate(id)
		if err != nil {
			return lookupErr(err, ErrWorkflowNotFound)
		}
		if !workflow.CanTransition(w.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.Status, status)
		}
		if _, err := r.Drawing.GetVersionByID(w.VersionID); err != nil {
			return lookupErr(err, ErrVersionNotFound)
		}
		old = w

		now := touch(w.UpdatedAt)
		w.Status = status
		w.UpdatedAt = now
		w.CompletedAt = nil
		if status.Completed() {
			w.CompletedAt = &now
		}
		if err := r.Workflow.UpdateWorkflow(&w); err != nil {
			return fmt.Errorf("update workflow: %w", err)
		}
		if err := r.Drawing.UpdateVersionStatus(w.VersionID, status); err != nil {
			return lookupErr(err, ErrVersionNotFound)
		}
		updated = w
		return nil
	})
	if err != nil {
		return workflow.ReviewWorkflow{}, err
	}

	s.Audit.Record(ctx, ActionUpdate, ResourceWorkflow, id, old, updated,
		fmt.Sprintf("Workflow %s moved from %s to %s", id, old.Status, status))
	return updated, nil
}
