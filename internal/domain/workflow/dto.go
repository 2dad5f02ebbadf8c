package workflow

import (
	"time"

	"github.com/linskybing/design-review/internal/domain/drawing"
)

type CreateWorkflowDTO struct {
	DrawingID   string                `json:"drawing_id" binding:"required"`
	VersionID   string                `json:"version_id" binding:"required"`
	ReviewerIDs []string              `json:"reviewer_ids"`
	DueDate     *time.Time            `json:"due_date,omitempty"`
	Status      *drawing.ReviewStatus `json:"status,omitempty" binding:"omitempty,oneof=draft in_review"`
}

type UpdateStatusDTO struct {
	Status drawing.ReviewStatus `json:"status" form:"status" binding:"required"`
}
