package project

import (
	"time"

	"gorm.io/datatypes"
)

// Project groups drawings and the team that reviews them.
type Project struct {
	ID            string                      `gorm:"primaryKey;size:64" json:"id"`
	Name          string                      `gorm:"size:200;not null" json:"name"`
	Description   *string                     `gorm:"type:text" json:"description,omitempty"`
	TeamMemberIDs datatypes.JSONSlice[string] `gorm:"column:team_member_ids" json:"team_member_ids"`
	CreatedAt     time.Time                   `gorm:"column:created_at" json:"created_at"`

	// DrawingIDs lists the owned drawings in insertion order. It is derived
	// from the drawings table and never persisted on the project row.
	DrawingIDs []string `gorm:"-" json:"drawing_ids"`
}

// TableName specifies the database table name
func (Project) TableName() string {
	return "projects"
}
