package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when a key does not exist in the object store.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	ContentType string
	Size        int64
}

// ObjectStore abstracts the binary storage behind uploaded images.
type ObjectStore interface {
	// Put stores the content of r under key.
	Put(ctx context.Context, key, contentType string, r io.Reader) error

	// Open returns a reader for key. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)

	// Delete removes key.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying bucket.
	Close() error
}
