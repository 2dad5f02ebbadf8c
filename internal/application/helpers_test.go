package application_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/linskybing/design-review/internal/application"
	"github.com/linskybing/design-review/internal/repository"
	"github.com/linskybing/design-review/internal/storage"
	"github.com/linskybing/design-review/internal/testutils"
	"github.com/linskybing/design-review/pkg/identity"
	"go.uber.org/zap"
)

// fakeBlobs is an in-memory BlobStore with switchable failures.
type fakeBlobs struct {
	mu       sync.Mutex
	objects  map[string][]byte
	storeErr error
	badURL   bool
	deleted  []string
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: make(map[string][]byte)}
}

func (f *fakeBlobs) Store(_ context.Context, r io.Reader, _ int64, name string) (storage.Object, error) {
	if f.storeErr != nil {
		return storage.Object{}, f.storeErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return storage.Object{}, err
	}
	key := storage.NewKey(name)
	f.mu.Lock()
	f.objects[key] = data
	f.mu.Unlock()
	obj := storage.Object{Key: key, URL: storage.URLFor(key), OriginalName: name, Size: int64(len(data))}
	if f.badURL {
		obj.URL = ""
	}
	return obj, nil
}

func (f *fakeBlobs) Open(_ context.Context, key string) (io.ReadCloser, storage.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, storage.Object{}, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), storage.Object{Key: key, Size: int64(len(data))}, nil
}

func (f *fakeBlobs) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[key]; !ok {
		return storage.ErrObjectNotFound
	}
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeBlobs) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

var errBlobDown = errors.New("blob store unavailable")

// setupSeededServices returns services over a memory store loaded with
// the demo dataset.
func setupSeededServices(t *testing.T) (*application.Services, *repository.Repos, *fakeBlobs) {
	t.Helper()
	repos := testutils.SeededRepos(t)
	blobs := newFakeBlobs()
	return application.New(repos, blobs, zap.NewNop()), repos, blobs
}

func asUser(id string) context.Context {
	return identity.WithRequestID(identity.WithUser(context.Background(), id), "req-test")
}
