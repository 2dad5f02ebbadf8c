package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/domain/workflow"
	"github.com/linskybing/design-review/internal/repository"
	"github.com/linskybing/design-review/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func versionStatus(t *testing.T, svc *application.Services, drawingID, versionID string) drawing.ReviewStatus {
	t.Helper()
	d, err := svc.Drawing.GetDrawing(drawingID)
	require.NoError(t, err)
	v, ok := d.FindVersion(versionID)
	require.True(t, ok)
	return v.Status
}

func TestApproveMirrorsVersion(t *testing.T) {
	svc, _, _ := setupSeededServices(t)
	ctx := asUser("user-2")

	w, err := svc.Workflow.SetStatus(ctx, "wf-1", drawing.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, drawing.StatusApproved, w.Status)
	require.NotNil(t, w.CompletedAt)
	assert.Equal(t, w.UpdatedAt, *w.CompletedAt)
	assert.Equal(t, drawing.StatusApproved, versionStatus(t, svc, "draw-1", "ver-1-2"))

	_, err = svc.Workflow.SetStatus(ctx, "wf-1", drawing.StatusInReview)
	assert.ErrorIs(t, err, application.ErrInvalidTransition)

	stored, err := svc.Workflow.GetWorkflow("wf-1")
	require.NoError(t, err)
	assert.Equal(t, drawing.StatusApproved, stored.Status)
	assert.Equal(t, drawing.StatusApproved, versionStatus(t, svc, "draw-1", "ver-1-2"))
}

func TestRevisionLoopClearsCompletedAt(t *testing.T) {
	svc, _, _ := setupSeededServices(t)
	ctx := asUser("user-2")

	w, err := svc.Workflow.SetStatus(ctx, "wf-1", drawing.StatusNeedsRevision)
	require.NoError(t, err)
	assert.Nil(t, w.CompletedAt)
	assert.Equal(t, drawing.StatusNeedsRevision, versionStatus(t, svc, "draw-1", "ver-1-2"))

	w, err = svc.Workflow.SetStatus(ctx, "wf-1", drawing.StatusInReview)
	require.NoError(t, err)
	assert.Nil(t, w.CompletedAt)
	assert.Equal(t, drawing.StatusInReview, versionStatus(t, svc, "draw-1", "ver-1-2"))

	w, err = svc.Workflow.SetStatus(ctx, "wf-1", drawing.StatusRejected)
	require.NoError(t, err)
	assert.NotNil(t, w.CompletedAt)
	assert.False(t, w.UpdatedAt.Before(w.CreatedAt))
}

func TestSetStatusErrors(t *testing.T) {
	svc, _, _ := setupSeededServices(t)
	ctx := asUser("user-2")

	_, err := svc.Workflow.SetStatus(ctx, "wf-9", drawing.StatusApproved)
	assert.ErrorIs(t, err, application.ErrWorkflowNotFound)
	assert.ErrorIs(t, err, application.ErrNotFound)

	_, err = svc.Workflow.SetStatus(ctx, "wf-1", drawing.ReviewStatus("done"))
	assert.ErrorIs(t, err, application.ErrValidation)

	_, err = svc.Workflow.SetStatus(ctx, "wf-1", drawing.StatusDraft)
	assert.ErrorIs(t, err, application.ErrInvalidTransition)
}

func TestCreateWorkflow(t *testing.T) {
	svc, _, _ := setupSeededServices(t)
	ctx := asUser("user-1")

	v, err := svc.Drawing.AppendVersion(ctx, "draw-2", "/uploads/v2.pdf", nil, "user-1")
	require.NoError(t, err)
	due := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	w, err := svc.Workflow.CreateWorkflow(ctx, workflow.CreateWorkflowDTO{
		DrawingID:   "draw-2",
		VersionID:   v.ID,
		ReviewerIDs: []string{"user-2", "user-3"},
		DueDate:     &due,
	})
	require.NoError(t, err)
	assert.Equal(t, drawing.StatusInReview, w.Status)
	assert.Nil(t, w.CompletedAt)
	assert.Equal(t, []string{"user-2", "user-3"}, []string(w.ReviewerIDs))
	assert.Equal(t, drawing.StatusInReview, versionStatus(t, svc, "draw-2", v.ID))

	drawingID := "draw-2"
	list, err := svc.Workflow.ListWorkflows(&drawingID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, w.ID, list[0].ID)

	_, err = svc.Workflow.CreateWorkflow(ctx, workflow.CreateWorkflowDTO{DrawingID: "draw-2", VersionID: v.ID})
	assert.ErrorIs(t, err, application.ErrConflict)
}

func TestCreateWorkflowErrors(t *testing.T) {
	svc, _, _ := setupSeededServices(t)
	ctx := asUser("user-1")
	approved := drawing.StatusApproved

	tests := []struct {
		name string
		dto  workflow.CreateWorkflowDTO
		want error
	}{
		{"existing review", workflow.CreateWorkflowDTO{DrawingID: "draw-1", VersionID: "ver-1-2"}, application.ErrWorkflowExists},
		{"unknown drawing", workflow.CreateWorkflowDTO{DrawingID: "draw-9", VersionID: "ver-1-1"}, application.ErrDrawingNotFound},
		{"foreign version", workflow.CreateWorkflowDTO{DrawingID: "draw-1", VersionID: "ver-2-1"}, application.ErrVersionNotFound},
		{"unknown reviewer", workflow.CreateWorkflowDTO{DrawingID: "draw-1", VersionID: "ver-1-1", ReviewerIDs: []string{"user-9"}}, application.ErrUserNotFound},
		{"terminal start", workflow.CreateWorkflowDTO{DrawingID: "draw-1", VersionID: "ver-1-1", Status: &approved}, application.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Workflow.CreateWorkflow(ctx, tt.dto)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

type workflowMocks struct {
	workflow *mock.MockWorkflowRepo
	drawing  *mock.MockDrawingRepo
	audit    *mock.MockAuditRepo
}

func setupWorkflowMocks(t *testing.T) (*application.WorkflowService, workflowMocks) {
	ctrl := gomock.NewController(t)
	m := workflowMocks{
		workflow: mock.NewMockWorkflowRepo(ctrl),
		drawing:  mock.NewMockDrawingRepo(ctrl),
		audit:    mock.NewMockAuditRepo(ctrl),
	}
	repos := &repository.Repos{
		Workflow: m.workflow,
		Drawing:  m.drawing,
		Audit:    m.audit,
	}
	return application.NewWorkflowService(repos, application.NewAuditService(repos, nil)), m
}

func TestSetStatusWritesWorkflowThenVersion(t *testing.T) {
	svc, m := setupWorkflowMocks(t)
	created := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
	current := workflow.ReviewWorkflow{
		ID: "wf-1", DrawingID: "draw-1", VersionID: "ver-1-2",
		Status: drawing.StatusInReview, CreatedAt: created, UpdatedAt: created,
	}

	m.workflow.EXPECT().GetWorkflowForUpdate("wf-1").Return(current, nil)
	m.drawing.EXPECT().GetVersionByID("ver-1-2").Return(drawing.Version{ID: "ver-1-2"}, nil)
	gomock.InOrder(
		m.workflow.EXPECT().UpdateWorkflow(gomock.Any()).DoAndReturn(func(w *workflow.ReviewWorkflow) error {
			assert.Equal(t, drawing.StatusRejected, w.Status)
			assert.NotNil(t, w.CompletedAt)
			return nil
		}),
		m.drawing.EXPECT().UpdateVersionStatus("ver-1-2", drawing.StatusRejected).Return(nil),
	)
	m.audit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	w, err := svc.SetStatus(asUser("user-2"), "wf-1", drawing.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, drawing.StatusRejected, w.Status)
}

func TestSetStatusVersionWriteFails(t *testing.T) {
	svc, m := setupWorkflowMocks(t)
	current := workflow.ReviewWorkflow{ID: "wf-1", VersionID: "ver-1-2", Status: drawing.StatusInReview}

	m.workflow.EXPECT().GetWorkflowForUpdate("wf-1").Return(current, nil)
	m.drawing.EXPECT().GetVersionByID("ver-1-2").Return(drawing.Version{ID: "ver-1-2"}, nil)
	m.workflow.EXPECT().UpdateWorkflow(gomock.Any()).Return(nil)
	m.drawing.EXPECT().UpdateVersionStatus("ver-1-2", drawing.StatusApproved).Return(gorm.ErrRecordNotFound)

	_, err := svc.SetStatus(asUser("user-2"), "wf-1", drawing.StatusApproved)
	assert.ErrorIs(t, err, application.ErrVersionNotFound)
}

func TestSetStatusAuditFailureIsSwallowed(t *testing.T) {
	svc, m := setupWorkflowMocks(t)
	current := workflow.ReviewWorkflow{ID: "wf-1", VersionID: "ver-1-2", Status: drawing.StatusNeedsRevision}

	m.workflow.EXPECT().GetWorkflowForUpdate("wf-1").Return(current, nil)
	m.drawing.EXPECT().GetVersionByID("ver-1-2").Return(drawing.Version{ID: "ver-1-2"}, nil)
	m.workflow.EXPECT().UpdateWorkflow(gomock.Any()).Return(nil)
	m.drawing.EXPECT().UpdateVersionStatus("ver-1-2", drawing.StatusInReview).Return(nil)
	m.audit.EXPECT().CreateAuditLog(gomock.Any()).Return(errors.New("disk full"))

	w, err := svc.SetStatus(asUser("user-2"), "wf-1", drawing.StatusInReview)
	require.NoError(t, err)
	assert.Equal(t, drawing.StatusInReview, w.Status)
}
