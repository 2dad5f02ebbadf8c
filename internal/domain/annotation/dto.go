package annotation

// PositionInput keeps every coordinate required while still accepting zero.
type PositionInput struct {
	X      *float64 `json:"x" binding:"required"`
	Y      *float64 `json:"y" binding:"required"`
	Width  *float64 `json:"width" binding:"required"`
	Height *float64 `json:"height" binding:"required"`
}

func (p PositionInput) ToPosition() Position {
	return Position{X: *p.X, Y: *p.Y, Width: *p.Width, Height: *p.Height}
}

type CreateAnnotationDTO struct {
	DrawingID string        `json:"drawing_id" binding:"required"`
	VersionID string        `json:"version_id" binding:"required"`
	Type      Type          `json:"type" binding:"required"`
	Content   string        `json:"content"`
	Position  PositionInput `json:"position" binding:"required"`
	AuthorID  *string       `json:"author_id,omitempty"`
}

type CreateReplyDTO struct {
	Content  string  `json:"content" form:"content"`
	AuthorID *string `json:"author_id,omitempty" form:"author_id"`
}

// ListFilter narrows annotation listings to a drawing and optionally a version.
type ListFilter struct {
	DrawingID string
	VersionID *string
}

// CreateInput is the validated-at-the-core form of an annotation request.
type CreateInput struct {
	DrawingID string
	VersionID string
	Type      Type
	Content   string
	Position  Position
	AuthorID  string
}

func (d CreateAnnotationDTO) ToInput(authorID string) CreateInput {
	return CreateInput{
		DrawingID: d.DrawingID,
		VersionID: d.VersionID,
		Type:      d.Type,
		Content:   d.Content,
		Position:  d.Position.ToPosition(),
		AuthorID:  authorID,
	}
}
