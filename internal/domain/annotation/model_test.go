package annotation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionValid(t *testing.T) {
	assert.True(t, Position{}.Valid())
	assert.True(t, Position{X: 450, Y: 320, Width: 200, Height: 100}.Valid())

	assert.False(t, Position{X: -1, Width: 10, Height: 10}.Valid())
	assert.False(t, Position{Width: -5}.Valid())
	assert.False(t, Position{X: math.NaN()}.Valid())
	assert.False(t, Position{Height: math.Inf(1)}.Valid())
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeComment, TypeHighlight, TypeMeasurement, TypeStamp, TypeArrow, TypeRectangle} {
		assert.True(t, typ.Valid(), typ)
	}
	assert.False(t, Type("circle").Valid())
	assert.False(t, Type("").Valid())
}

func TestCreateAnnotationDTOToInput(t *testing.T) {
	x, y, w, h := 1.0, 2.0, 3.0, 4.0
	dto := CreateAnnotationDTO{
		DrawingID: "draw-1",
		VersionID: "ver-1-2",
		Type:      TypeArrow,
		Content:   "here",
		Position:  PositionInput{X: &x, Y: &y, Width: &w, Height: &h},
	}
	in := dto.ToInput("user-2")
	assert.Equal(t, "user-2", in.AuthorID)
	assert.Equal(t, Position{X: 1, Y: 2, Width: 3, Height: 4}, in.Position)
}
