package application_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendVersionToEmptyDrawing(t *testing.T) {
	svc, repos, _ := setupSeededServices(t)
	require.NoError(t, repos.Drawing.CreateDrawing(&drawing.Drawing{ID: "draw-X", Title: "X", ProjectID: "proj-2"}))
	ctx := asUser("user-1")

	summary := "initial"
	v1, err := svc.Drawing.AppendVersion(ctx, "draw-X", "http://blob/a.pdf", &summary, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, v1.VersionNumber)
	assert.Equal(t, drawing.StatusDraft, v1.Status)
	assert.Equal(t, "user-1", v1.CreatedBy)

	v2, err := svc.Drawing.AppendVersion(ctx, "draw-X", "http://blob/b.pdf", nil, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, v2.VersionNumber)

	d, err := svc.Drawing.GetDrawing("draw-X")
	require.NoError(t, err)
	require.NotNil(t, d.CurrentVersion)
	assert.Equal(t, 2, d.CurrentVersion.VersionNumber)
	assert.Equal(t, d.Versions[len(d.Versions)-1].ID, d.CurrentVersion.ID)
	assert.False(t, d.UpdatedAt.Before(v2.CreatedAt))
	assert.False(t, d.UpdatedAt.Before(d.CreatedAt))
}

func TestAppendVersionBumpsSeededDrawing(t *testing.T) {
	svc, _, _ := setupSeededServices(t)
	before, err := svc.Drawing.GetDrawing("draw-1")
	require.NoError(t, err)

	v, err := svc.Drawing.AppendVersion(asUser("user-1"), "draw-1", "/uploads/v3.pdf", nil, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, v.VersionNumber)

	after, err := svc.Drawing.GetDrawing("draw-1")
	require.NoError(t, err)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, v.ID, *after.CurrentVersionID)
}

func TestAppendVersionErrors(t *testing.T) {
	svc, _, _ := setupSeededServices(t)
	ctx := asUser("user-1")

	_, err := svc.Drawing.AppendVersion(ctx, "draw-missing", "/a.pdf", nil, "user-1")
	assert.ErrorIs(t, err, application.ErrDrawingNotFound)
	assert.ErrorIs(t, err, application.ErrNotFound)

	_, err = svc.Drawing.AppendVersion(ctx, "draw-1", "/a.pdf", nil, "user-9")
	assert.ErrorIs(t, err, application.ErrUserNotFound)

	// drawing is resolved before the creator
	_, err = svc.Drawing.AppendVersion(ctx, "draw-missing", "/a.pdf", nil, "user-9")
	assert.ErrorIs(t, err, application.ErrDrawingNotFound)

	_, err = svc.Drawing.AppendVersion(ctx, "draw-1", "  ", nil, "user-1")
	assert.ErrorIs(t, err, application.ErrValidation)

	versions, err := svc.Drawing.ListVersions("draw-1")
	require.NoError(t, err)
	assert.Len(t, versions, 2)
}

func TestAppendVersionConcurrentIsDense(t *testing.T) {
	svc, _, _ := setupSeededServices(t)
	ctx := asUser("user-1")

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Drawing.AppendVersion(ctx, "draw-2", fmt.Sprintf("/uploads/%d.pdf", i), nil, "user-1")
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	d, err := svc.Drawing.GetDrawing("draw-2")
	require.NoError(t, err)
	require.Len(t, d.Versions, n+1)
	for i, v := range d.Versions {
		assert.Equal(t, i+1, v.VersionNumber)
	}
	assert.Equal(t, n+1, d.CurrentVersion.VersionNumber)
}

func TestProjectsEmbedDrawingsAndTeam(t *testing.T) {
	svc, _, _ := setupSeededServices(t)

	projects, err := svc.Drawing.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "proj-1", projects[0].ID)
	assert.Len(t, projects[0].Drawings, 2)
	assert.Len(t, projects[0].TeamMembers, 3)
	assert.Empty(t, projects[1].Drawings)
	assert.Len(t, projects[1].TeamMembers, 2)

	p, err := svc.Drawing.GetProject("proj-2")
	require.NoError(t, err)
	assert.Equal(t, "Hudson Yards Tower C", p.Name)

	_, err = svc.Drawing.GetProject("proj-9")
	assert.ErrorIs(t, err, application.ErrProjectNotFound)
}

func TestListDrawingsFilter(t *testing.T) {
	svc, _, _ := setupSeededServices(t)

	all, err := svc.Drawing.ListDrawings(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "draw-1", all[0].ID)

	p2 := "proj-2"
	none, err := svc.Drawing.ListDrawings(&p2)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.Drawing.ListVersions("draw-9")
	assert.ErrorIs(t, err, application.ErrDrawingNotFound)
}
