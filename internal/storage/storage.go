// Package storage keeps uploaded drawing files outside the review store.
// Versions only ever hold the public URL a BlobStore hands back.
package storage

import (
	"context"
	"errors"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("object not found")

// Object describes a stored blob.
type Object struct {
	Key          string
	URL          string
	OriginalName string
	ContentType  string
	Size         int64
}

type BlobStore interface {
	Store(ctx context.Context, r io.Reader, size int64, originalName string) (Object, error)
	Open(ctx context.Context, key string) (io.ReadCloser, Object, error)
	Delete(ctx context.Context, key string) error
}

// URLPrefix is the path stored blobs are served under.
const URLPrefix = "/uploads/"

// NewKey returns a fresh object key that keeps the original extension.
func NewKey(originalName string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
}

func URLFor(key string) string {
	return URLPrefix + key
}

func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// validKey rejects keys that could escape the bucket or upload directory.
func validKey(key string) bool {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return false
	}
	return true
}
