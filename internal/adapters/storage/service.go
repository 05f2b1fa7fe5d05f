// Package storage provides the resume storage backend abstraction with
// local-disk and S3-compatible (MinIO) implementations. The adapter is
// domain-agnostic; callers hand it bytes and get back an opaque stored key.
package storage

import (
	"context"
	"io"
	"time"
)

// PresignedURLTTL is the expiration time for presigned download URLs.
const PresignedURLTTL = 15 * time.Minute

// Backend defines the contract for resume storage implementations.
// Save must produce a collision-resistant stored key; the original upload
// filename only contributes its extension.
type Backend interface {
	// Save persists the content and returns the opaque stored key.
	Save(ctx context.Context, r io.Reader, fileName string, size int64) (string, error)

	// PublicURL derives a client-facing access URL for a stored key.
	// The raw key itself is never exposed as-is to clients.
	PublicURL(ctx context.Context, key string) (string, error)

	// ResolvePath returns the backend-internal location for a stored key
	// (an absolute filesystem path, or bucket/key for object storage).
	ResolvePath(key string) string

	// Delete removes a previously stored object. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}

// Config defines the configuration interface for the storage backends.
type Config interface {
	GetStorageDriver() string
	GetUploadDir() string
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOBucketResumes() string
	IsMinIOEnabled() bool
}
