package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOBackend stores resumes in an S3-compatible bucket. Derived access
// URLs are presigned and time-boxed.
type MinIOBackend struct {
	client *minio.Client
	bucket string
}

// NewMinIOBackend creates a MinIO-backed storage backend.
func NewMinIOBackend(cfg Config) (*MinIOBackend, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOBackend{
		client: client,
		bucket: cfg.GetMinIOBucketResumes(),
	}, nil
}

// EnsureBucketExists creates the resume bucket if it doesn't exist.
func (b *MinIOBackend) EnsureBucketExists(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := b.client.MakeBucket(ctx, b.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", b.bucket, err)
		}
	}

	return nil
}

// Save uploads the content under a collision-resistant key and returns it.
func (b *MinIOBackend) Save(ctx context.Context, r io.Reader, fileName string, size int64) (string, error) {
	key := uniqueKey(fileName)

	_, err := b.client.PutObject(ctx, b.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: ContentTypeForExtension(fileName),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return key, nil
}

// PublicURL creates a presigned download URL for a stored key.
func (b *MinIOBackend) PublicURL(ctx context.Context, key string) (string, error) {
	presigned, err := b.client.PresignedGetObject(ctx, b.bucket, key, PresignedURLTTL, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", key, err)
	}
	return presigned.String(), nil
}

// ResolvePath returns the bucket-qualified object location.
func (b *MinIOBackend) ResolvePath(key string) string {
	return b.bucket + "/" + key
}

// Delete removes an object from the bucket.
func (b *MinIOBackend) Delete(ctx context.Context, key string) error {
	if err := b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// Compile-time check that MinIOBackend implements Backend
var _ Backend = (*MinIOBackend)(nil)
