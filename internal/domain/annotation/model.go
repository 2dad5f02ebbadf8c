package annotation

import (
	"math"
	"time"
)

// Type is the kind of markup an annotation draws on the page.
type Type string

const (
	TypeComment     Type = "comment"
	TypeHighlight   Type = "highlight"
	TypeMeasurement Type = "measurement"
	TypeStamp       Type = "stamp"
	TypeArrow       Type = "arrow"
	TypeRectangle   Type = "rectangle"
)

func (t Type) Valid() bool {
	switch t {
	case TypeComment, TypeHighlight, TypeMeasurement, TypeStamp, TypeArrow, TypeRectangle:
		return true
	}
	return false
}

// Position is a rectangle in the rendered page's point space.
type Position struct {
	X      float64 `gorm:"column:pos_x" json:"x"`
	Y      float64 `gorm:"column:pos_y" json:"y"`
	Width  float64 `gorm:"column:pos_width" json:"width"`
	Height float64 `gorm:"column:pos_height" json:"height"`
}

// Valid reports whether the rectangle is finite and anchored on the page.
func (p Position) Valid() bool {
	for _, v := range []float64{p.X, p.Y, p.Width, p.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}

// Annotation is a positioned markup attached to one drawing version.
type Annotation struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	DrawingID string    `gorm:"size:64;index;not null" json:"drawing_id"`
	VersionID string    `gorm:"size:64;index;not null" json:"version_id"`
	Type      Type      `gorm:"size:20;not null" json:"type"`
	AuthorID  string    `gorm:"size:64;not null" json:"author_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Position  Position  `gorm:"embedded" json:"position"`
	Resolved  bool      `gorm:"not null;default:false" json:"resolved"`
	Seq       int64     `gorm:"autoIncrement;index" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Replies []Reply `gorm:"foreignKey:AnnotationID;constraint:OnDelete:CASCADE" json:"replies"`
}

func (Annotation) TableName() string {
	return "annotations"
}

// Reply is one message in an annotation's thread.
type Reply struct {
	ID           string    `gorm:"primaryKey;size:96" json:"id"`
	AnnotationID string    `gorm:"size:64;index;not null" json:"annotation_id"`
	AuthorID     string    `gorm:"size:64;not null" json:"author_id"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Reply) TableName() string {
	return "annotation_replies"
}
