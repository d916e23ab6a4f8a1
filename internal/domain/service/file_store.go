package service

import (
	"context"
	"io"

	"postboard/internal/domain/entity"
)

// FileStore is the object storage holding user uploads.
type FileStore interface {
	// Put writes the object under key, replacing any existing one.
	Put(ctx context.Context, key, contentType string, r io.Reader) error

	// List returns the objects whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]*entity.StoredFile, error)

	// Open streams an object. The returned content type may be empty.
	Open(ctx context.Context, key string) (rc io.ReadCloser, contentType string, err error)

	// URL returns the public location of key.
	URL(key string) string
}
