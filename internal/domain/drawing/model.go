package drawing

import "time"

// Drawing is a single engineering document tracked across revisions.
type Drawing struct {
	ID               string    `gorm:"primaryKey;size:64" json:"id"`
	Title            string    `gorm:"size:200;not null" json:"title"`
	Description      *string   `gorm:"type:text" json:"description,omitempty"`
	ProjectID        string    `gorm:"size:64;index;not null" json:"project_id"`
	CurrentVersionID *string   `gorm:"size:64" json:"current_version_id,omitempty"`
	Seq              int64     `gorm:"autoIncrement;index" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Versions       []Version `gorm:"foreignKey:DrawingID;constraint:OnDelete:CASCADE" json:"versions"`
	CurrentVersion *Version  `gorm:"-" json:"current_version"`
}

func (Drawing) TableName() string {
	return "drawings"
}

// Latest returns the most recently appended version, or nil.
func (d *Drawing) Latest() *Version {
	if len(d.Versions) == 0 {
		return nil
	}
	return &d.Versions[len(d.Versions)-1]
}

// NextVersionNumber is the number the next appended version receives.
func (d *Drawing) NextVersionNumber() int {
	return len(d.Versions) + 1
}

// SyncCurrent points CurrentVersion and CurrentVersionID at the latest
// version so the two never drift from the version sequence.
func (d *Drawing) SyncCurrent() {
	latest := d.Latest()
	if latest == nil {
		d.CurrentVersion = nil
		d.CurrentVersionID = nil
		return
	}
	d.CurrentVersion = latest
	id := latest.ID
	d.CurrentVersionID = &id
}

// FindVersion returns the version with the given id owned by this drawing.
func (d *Drawing) FindVersion(versionID string) (*Version, bool) {
	for i := range d.Versions {
		if d.Versions[i].ID == versionID {
			return &d.Versions[i], true
		}
	}
	return nil, false
}

// Version is one immutable revision of a drawing. Only Status changes after
// creation, and only through the workflow that reviews it.
type Version struct {
	ID             string       `gorm:"primaryKey;size:64" json:"id"`
	DrawingID      string       `gorm:"size:64;not null;uniqueIndex:idx_drawing_version_number" json:"drawing_id"`
	VersionNumber  int          `gorm:"not null;uniqueIndex:idx_drawing_version_number" json:"version_number"`
	CreatedAt      time.Time    `json:"created_at"`
	CreatedBy      string       `gorm:"size:64;not null" json:"created_by"`
	FileURL        string       `gorm:"type:text;not null" json:"file_url"`
	ChangesSummary *string      `gorm:"type:text" json:"changes_summary,omitempty"`
	Status         ReviewStatus `gorm:"size:20;not null;default:'draft'" json:"status"`
}

func (Version) TableName() string {
	return "drawing_versions"
}
