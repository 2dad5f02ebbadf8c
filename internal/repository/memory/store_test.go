package memory

import (
	"testing"
	"time"

	"github.com/linskybing/design-review/internal/domain/annotation"
	"github.com/linskybing/design-review/internal/domain/audit"
	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/domain/project"
	"github.com/linskybing/design-review/internal/domain/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOrderedKeepsInsertionOrder(t *testing.T) {
	o := newOrdered[int]()
	o.put("b", 2)
	o.put("a", 1)
	o.put("c", 3)
	o.put("b", 20)
	require.True(t, o.remove("a"))
	assert.False(t, o.remove("a"))

	var got []int
	o.each(func(v int) { got = append(got, v) })
	assert.Equal(t, []int{20, 3}, got)
}

func TestDrawingRepoAppendVersion(t *testing.T) {
	repos := NewRepositories()
	d := drawing.Drawing{ID: "draw-X", Title: "X", ProjectID: "proj-1"}
	require.NoError(t, repos.Drawing.CreateDrawing(&d))

	for i := 1; i <= 2; i++ {
		d, err := repos.Drawing.GetDrawingForUpdate("draw-X")
		require.NoError(t, err)
		v := drawing.Version{ID: "v" + string(rune('0'+i)), DrawingID: d.ID, VersionNumber: d.NextVersionNumber(), Status: drawing.StatusDraft}
		require.NoError(t, repos.Drawing.AppendVersion(&d, &v))
		assert.Equal(t, v.ID, *d.CurrentVersionID)
	}

	stored, err := repos.Drawing.GetDrawingByID("draw-X")
	require.NoError(t, err)
	require.Len(t, stored.Versions, 2)
	assert.Equal(t, 2, stored.CurrentVersion.VersionNumber)

	dup := drawing.Version{ID: "v9", DrawingID: "draw-X", VersionNumber: 2}
	assert.ErrorIs(t, repos.Drawing.AppendVersion(&stored, &dup), errDuplicateKey)

	require.NoError(t, repos.Drawing.UpdateVersionStatus("v2", drawing.StatusInReview))
	v, err := repos.Drawing.GetVersionByID("v2")
	require.NoError(t, err)
	assert.Equal(t, drawing.StatusInReview, v.Status)
	assert.ErrorIs(t, repos.Drawing.UpdateVersionStatus("nope", drawing.StatusApproved), gorm.ErrRecordNotFound)
}

func TestReadsDoNotAliasStore(t *testing.T) {
	repos := NewRepositories()
	d := drawing.Drawing{ID: "draw-1", Versions: []drawing.Version{{ID: "ver-1", VersionNumber: 1}}}
	require.NoError(t, repos.Drawing.CreateDrawing(&d))

	got, err := repos.Drawing.GetDrawingByID("draw-1")
	require.NoError(t, err)
	got.Versions[0].Status = drawing.StatusApproved

	again, err := repos.Drawing.GetDrawingByID("draw-1")
	require.NoError(t, err)
	assert.Equal(t, drawing.ReviewStatus(""), again.Versions[0].Status)
}

func TestProjectDrawingIDsInInsertionOrder(t *testing.T) {
	repos := NewRepositories()
	require.NoError(t, repos.Project.SaveProject(&project.Project{ID: "proj-1", Name: "P"}))
	for _, id := range []string{"draw-b", "draw-a"} {
		require.NoError(t, repos.Drawing.CreateDrawing(&drawing.Drawing{ID: id, ProjectID: "proj-1"}))
	}
	require.NoError(t, repos.Drawing.CreateDrawing(&drawing.Drawing{ID: "draw-other", ProjectID: "proj-2"}))

	p, err := repos.Project.GetProjectByID("proj-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"draw-b", "draw-a"}, p.DrawingIDs)

	_, err = repos.Project.GetProjectByID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAnnotationRepoLifecycle(t *testing.T) {
	repos := NewRepositories()
	a := annotation.Annotation{ID: "ann-1", DrawingID: "draw-1", VersionID: "ver-1"}
	require.NoError(t, repos.Annotation.CreateAnnotation(&a))
	require.NoError(t, repos.Annotation.CreateAnnotation(&annotation.Annotation{ID: "ann-2", DrawingID: "draw-1", VersionID: "ver-2"}))
	assert.ErrorIs(t, repos.Annotation.CreateAnnotation(&a), errDuplicateKey)

	require.NoError(t, repos.Annotation.CreateReply(&annotation.Reply{ID: "ann-1-reply-1", AnnotationID: "ann-1"}))
	got, err := repos.Annotation.GetAnnotationByID("ann-1")
	require.NoError(t, err)
	assert.Len(t, got.Replies, 1)

	v := "ver-2"
	filtered, err := repos.Annotation.ListAnnotations(annotation.ListFilter{DrawingID: "draw-1", VersionID: &v})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "ann-2", filtered[0].ID)

	require.NoError(t, repos.Annotation.DeleteAnnotation("ann-1"))
	assert.ErrorIs(t, repos.Annotation.DeleteAnnotation("ann-1"), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repos.Annotation.CreateReply(&annotation.Reply{ID: "x", AnnotationID: "ann-1"}), gorm.ErrRecordNotFound)
}

func TestWorkflowRepoOnePerVersion(t *testing.T) {
	repos := NewRepositories()
	require.NoError(t, repos.Workflow.CreateWorkflow(&workflow.ReviewWorkflow{ID: "wf-1", DrawingID: "draw-1", VersionID: "ver-1"}))
	assert.ErrorIs(t, repos.Workflow.CreateWorkflow(&workflow.ReviewWorkflow{ID: "wf-2", DrawingID: "draw-1", VersionID: "ver-1"}), errDuplicateKey)

	w, err := repos.Workflow.GetWorkflowByVersion("ver-1")
	require.NoError(t, err)
	assert.Equal(t, "wf-1", w.ID)
	_, err = repos.Workflow.GetWorkflowByVersion("ver-2")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAuditRepoQueryAndCleanup(t *testing.T) {
	repos := NewRepositories()
	now := time.Now()
	entries := []audit.AuditLog{
		{ID: "a1", Action: "create", ResourceType: "annotation", CreatedAt: now.AddDate(0, 0, -100)},
		{ID: "a2", Action: "update", ResourceType: "workflow", CreatedAt: now.Add(-time.Hour)},
		{ID: "a3", Action: "create", ResourceType: "annotation", CreatedAt: now},
	}
	for i := range entries {
		require.NoError(t, repos.Audit.CreateAuditLog(&entries[i]))
	}

	rt := "annotation"
	logs, err := repos.Audit.GetAuditLogs(audit.QueryParams{ResourceType: &rt})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "a3", logs[0].ID)

	logs, err = repos.Audit.GetAuditLogs(audit.QueryParams{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "a2", logs[0].ID)

	removed, err := repos.Audit.DeleteOldAuditLogs(90)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}
