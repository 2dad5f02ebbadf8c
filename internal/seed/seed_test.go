package seed

import (
	"testing"

	"github.com/linskybing/design-review/internal/domain/annotation"
	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixture(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	assert.Len(t, f.Users, 3)
	assert.Len(t, f.Projects, 2)
	assert.Len(t, f.Drawings, 2)
	assert.Len(t, f.Annotations, 3)
	assert.Len(t, f.Workflows, 1)
}

func TestApplyPopulatesStore(t *testing.T) {
	repos := memory.NewRepositories()
	f, err := Default()
	require.NoError(t, err)

	written, err := Apply(repos, f)
	require.NoError(t, err)
	assert.True(t, written)

	d, err := repos.Drawing.GetDrawingByID("draw-1")
	require.NoError(t, err)
	require.Len(t, d.Versions, 2)
	require.NotNil(t, d.CurrentVersion)
	assert.Equal(t, "ver-1-2", d.CurrentVersion.ID)
	assert.Equal(t, drawing.StatusInReview, d.CurrentVersion.Status)
	assert.Equal(t, 2, d.CurrentVersion.VersionNumber)

	p, err := repos.Project.GetProjectByID("proj-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"draw-1", "draw-2"}, p.DrawingIDs)
	assert.Len(t, p.TeamMemberIDs, 3)

	anns, err := repos.Annotation.ListAnnotations(annotation.ListFilter{DrawingID: "draw-1"})
	require.NoError(t, err)
	require.Len(t, anns, 3)
	assert.Equal(t, []string{"ann-1", "ann-2", "ann-3"}, []string{anns[0].ID, anns[1].ID, anns[2].ID})
	require.Len(t, anns[0].Replies, 1)
	assert.Equal(t, "user-1", anns[0].Replies[0].AuthorID)
	assert.Equal(t, `12'-6" clear height verified`, anns[1].Content)
	assert.Equal(t, annotation.Position{X: 450, Y: 320, Width: 200, Height: 100}, anns[0].Position)

	wf, err := repos.Workflow.GetWorkflowByID("wf-1")
	require.NoError(t, err)
	assert.Nil(t, wf.CompletedAt)
	require.NotNil(t, wf.DueDate)
	assert.Equal(t, []string{"user-2"}, []string(wf.ReviewerIDs))

	written, err = Apply(repos, f)
	require.NoError(t, err)
	assert.False(t, written)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("users:\n  - id: u\n    nickname: x\n"))
	assert.Error(t, err)
}

func TestApplyRejectsBadEnum(t *testing.T) {
	f, err := Parse([]byte("users:\n  - id: u\n    name: U\n    email: u@x\n    role: overlord\n"))
	require.NoError(t, err)
	_, err = Apply(memory.NewRepositories(), f)
	assert.Error(t, err)
}
