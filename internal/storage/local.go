package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore writes blobs into a directory on the local disk.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Store(ctx context.Context, r io.Reader, size int64, originalName string) (Object, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}
	key := NewKey(originalName)
	path := filepath.Join(s.dir, key)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return Object{}, fmt.Errorf("create blob: %w", err)
	}
	written, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return Object{}, fmt.Errorf("write blob: %w", err)
	}
	if size >= 0 && written != size {
		_ = os.Remove(path)
		return Object{}, fmt.Errorf("write blob: short write %d of %d bytes", written, size)
	}

	return Object{
		Key:          key,
		URL:          URLFor(key),
		OriginalName: originalName,
		ContentType:  contentTypeFor(originalName),
		Size:         written,
	}, nil
}

func (s *LocalStore) Open(_ context.Context, key string) (io.ReadCloser, Object, error) {
	if !validKey(key) {
		return nil, Object{}, ErrObjectNotFound
	}
	f, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Object{}, ErrObjectNotFound
		}
		return nil, Object{}, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, Object{}, err
	}
	return f, Object{
		Key:         key,
		URL:         URLFor(key),
		ContentType: contentTypeFor(key),
		Size:        info.Size(),
	}, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	if !validKey(key) {
		return ErrObjectNotFound
	}
	err := os.Remove(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrObjectNotFound
	}
	return err
}
