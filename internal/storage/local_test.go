package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	obj, err := store.Store(ctx, strings.NewReader("%PDF-1.4"), 8, "Plan B2.PDF")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(obj.Key, ".pdf"))
	assert.Equal(t, "/uploads/"+obj.Key, obj.URL)
	assert.Equal(t, "application/pdf", obj.ContentType)
	assert.Equal(t, int64(8), obj.Size)

	rc, info, err := store.Open(ctx, obj.Key)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.Equal(t, int64(8), info.Size)

	require.NoError(t, store.Delete(ctx, obj.Key))
	_, _, err = store.Open(ctx, obj.Key)
	assert.ErrorIs(t, err, ErrObjectNotFound)
	assert.ErrorIs(t, store.Delete(ctx, obj.Key), ErrObjectNotFound)
}

func TestLocalStoreRejectsShortWrite(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Store(context.Background(), strings.NewReader("abc"), 10, "a.pdf")
	assert.Error(t, err)
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../etc/passwd", "a/b.pdf", `..\x`} {
		_, _, err := store.Open(context.Background(), key)
		assert.ErrorIs(t, err, ErrObjectNotFound, key)
	}
}
