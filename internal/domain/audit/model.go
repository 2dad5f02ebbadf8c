package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records one mutation of a review resource.
type AuditLog struct {
	ID           string         `gorm:"primaryKey;size:64" json:"id"`
	UserID       string         `gorm:"size:64;index" json:"user_id"`
	Action       string         `gorm:"size:50;not null" json:"action"`
	ResourceType string         `gorm:"size:50;index;not null" json:"resource_type"`
	ResourceID   string         `gorm:"size:96;index;not null" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty" swaggertype:"object"`
	NewData      datatypes.JSON `json:"new_data,omitempty" swaggertype:"object"`
	RequestID    string         `gorm:"size:64" json:"request_id,omitempty"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// QueryParams filters audit log listings. Nil fields are not applied.
type QueryParams struct {
	UserID       *string
	ResourceType *string
	ResourceID   *string
	Action       *string
	StartTime    *time.Time
	EndTime      *time.Time
	Limit        int
	Offset       int
}
