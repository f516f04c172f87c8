// Package storage contains object storage abstractions for uploaded images.
// Two backends exist: a local directory (default) and an S3-compatible bucket (MinIO).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"newsapi/internal/config"
)

var (
	// ErrObjectNotFound is returned by Get when no object exists under the key.
	ErrObjectNotFound = errors.New("object not found")
	// ErrInvalidKey is returned for empty keys and keys escaping the storage root.
	ErrInvalidKey = errors.New("invalid object key")
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and the implementation
// will buffer/chunk as supported by the backend.
// ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the object storage client interface. Keys are slash-separated paths
// such as "uploads/20240601_120000_abcd1234_cover.png".
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}

// Backend names accepted by New.
const (
	BackendLocal = "local"
	BackendMinIO = "minio"
)

// New returns the backend selected by cfg.Upload.Backend.
func New(cfg *config.AppConfig) (Storage, error) {
	switch cfg.Upload.Backend {
	case "", BackendLocal:
		return NewLocal(cfg.Upload.Dir)
	case BackendMinIO:
		return NewMinIO(cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Upload.Backend)
	}
}
