package workflow

import (
	"time"

	"github.com/linskybing/design-review/internal/domain/drawing"
	"gorm.io/datatypes"
)

// ReviewWorkflow is the approval process governing one drawing version.
type ReviewWorkflow struct {
	ID          string                      `gorm:"primaryKey;size:64" json:"id"`
	DrawingID   string                      `gorm:"size:64;index;not null" json:"drawing_id"`
	VersionID   string                      `gorm:"size:64;uniqueIndex;not null" json:"version_id"`
	Status      drawing.ReviewStatus        `gorm:"size:20;not null" json:"status"`
	ReviewerIDs datatypes.JSONSlice[string] `gorm:"column:reviewer_ids" json:"reviewer_ids"`
	DueDate     *time.Time                  `json:"due_date,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	CompletedAt *time.Time                  `json:"completed_at,omitempty"`
}

func (ReviewWorkflow) TableName() string {
	return "review_workflows"
}
