package drawing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCurrentFollowsLatestVersion(t *testing.T) {
	d := Drawing{ID: "draw-X"}
	d.SyncCurrent()
	assert.Nil(t, d.CurrentVersion)
	assert.Nil(t, d.CurrentVersionID)
	assert.Equal(t, 1, d.NextVersionNumber())

	d.Versions = append(d.Versions, Version{ID: "v1", VersionNumber: 1})
	d.Versions = append(d.Versions, Version{ID: "v2", VersionNumber: 2})
	d.SyncCurrent()

	require.NotNil(t, d.CurrentVersion)
	assert.Equal(t, "v2", d.CurrentVersion.ID)
	assert.Equal(t, "v2", *d.CurrentVersionID)
	assert.Equal(t, 3, d.NextVersionNumber())

	v, ok := d.FindVersion("v1")
	require.True(t, ok)
	assert.Equal(t, 1, v.VersionNumber)
	_, ok = d.FindVersion("nope")
	assert.False(t, ok)
}

func TestReviewStatus(t *testing.T) {
	assert.True(t, StatusApproved.Completed())
	assert.True(t, StatusRejected.Completed())
	assert.False(t, StatusNeedsRevision.Completed())
	assert.False(t, ReviewStatus("done").Valid())
	assert.True(t, StatusDraft.Valid())
}
