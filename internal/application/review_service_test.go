package application_test

import (
	"io"
	"strings"
	"testing"

	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/internal/domain/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditFilter(resourceType string) audit.QueryParams {
	return audit.QueryParams{ResourceType: &resourceType}
}

func upload(body, name string) application.Upload {
	return application.Upload{Reader: strings.NewReader(body), Size: int64(len(body)), Filename: name}
}

func TestUploadVersion(t *testing.T) {
	svc, _, blobs := setupSeededServices(t)
	ctx := asUser("user-1")
	summary := "Revised column grid"

	v, err := svc.Review.UploadVersion(ctx, "draw-2", upload("%PDF-1.7", "framing.pdf"), &summary, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, v.VersionNumber)
	assert.True(t, strings.HasPrefix(v.FileURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(v.FileURL, ".pdf"))
	assert.Equal(t, 1, blobs.count())

	key := strings.TrimPrefix(v.FileURL, "/uploads/")
	rc, _, err := svc.Review.OpenFile(ctx, key)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(body))

	logs, err := svc.Audit.QueryAuditLogs(auditFilter(application.ResourceFile))
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestUploadVersionStoreFailureLeavesNoVersion(t *testing.T) {
	svc, _, blobs := setupSeededServices(t)
	blobs.storeErr = errBlobDown

	_, err := svc.Review.UploadVersion(asUser("user-1"), "draw-2", upload("data", "a.pdf"), nil, "user-1")
	assert.ErrorIs(t, err, errBlobDown)

	versions, err := svc.Drawing.ListVersions("draw-2")
	require.NoError(t, err)
	assert.Len(t, versions, 1)
}

func TestUploadVersionAppendFailureRemovesBlob(t *testing.T) {
	svc, _, blobs := setupSeededServices(t)
	blobs.badURL = true

	_, err := svc.Review.UploadVersion(asUser("user-1"), "draw-2", upload("data", "a.pdf"), nil, "user-1")
	assert.ErrorIs(t, err, application.ErrValidation)
	assert.Equal(t, 0, blobs.count())
	assert.Len(t, blobs.deleted, 1)

	versions, err := svc.Drawing.ListVersions("draw-2")
	require.NoError(t, err)
	assert.Len(t, versions, 1)
}

func TestUploadVersionChecksBeforeStoring(t *testing.T) {
	svc, _, blobs := setupSeededServices(t)
	ctx := asUser("user-1")

	_, err := svc.Review.UploadVersion(ctx, "draw-9", upload("data", "a.pdf"), nil, "user-1")
	assert.ErrorIs(t, err, application.ErrDrawingNotFound)
	_, err = svc.Review.UploadVersion(ctx, "draw-2", upload("data", "a.pdf"), nil, "user-9")
	assert.ErrorIs(t, err, application.ErrUserNotFound)
	_, err = svc.Review.UploadVersion(ctx, "draw-2", upload("", "a.pdf"), nil, "user-1")
	assert.ErrorIs(t, err, application.ErrEmptyFile)
	assert.Equal(t, 0, blobs.count())
}

func TestOpenFileMissing(t *testing.T) {
	svc, _, _ := setupSeededServices(t)
	_, _, err := svc.Review.OpenFile(asUser("user-1"), "nope.pdf")
	assert.ErrorIs(t, err, application.ErrFileNotFound)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestAuditCleanup(t *testing.T) {
	svc, _, _ := setupSeededServices(t)
	ctx := asUser("user-1")

	_, err := svc.Review.StoreFile(ctx, upload("x", "a.png"))
	require.NoError(t, err)
	_, err = svc.Annotation.Resolve(ctx, "ann-1")
	require.NoError(t, err)

	all, err := svc.Audit.QueryAuditLogs(audit.QueryParams{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.False(t, all[0].CreatedAt.Before(all[1].CreatedAt))

	user := "user-1"
	limited, err := svc.Audit.QueryAuditLogs(audit.QueryParams{UserID: &user, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	n, err := svc.Audit.CleanupOldLogs(30)
	require.NoError(t, err)
	assert.Zero(t, n)
}
