package storage

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalBackend stores uploads on the local filesystem under a base directory.
// Stored keys are uuid-hex names carrying only the original extension, so
// uploads can never collide or overwrite each other.
type LocalBackend struct {
	dir string
}

// NewLocalBackend creates the upload directory if needed and returns a
// filesystem-backed storage backend.
func NewLocalBackend(dir string) (*LocalBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &LocalBackend{dir: dir}, nil
}

// Save writes the content to a new uniquely named file and returns the key.
func (b *LocalBackend) Save(_ context.Context, r io.Reader, fileName string, _ int64) (string, error) {
	key := uniqueKey(fileName)
	dest := filepath.Join(b.dir, key)

	// O_EXCL guards against the astronomically unlikely key collision.
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(dest)
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("close %s: %w", dest, err)
	}

	return key, nil
}

// PublicURL returns the static serving path for a stored key.
func (b *LocalBackend) PublicURL(_ context.Context, key string) (string, error) {
	return path.Join("/uploads", key), nil
}

// ResolvePath returns the absolute filesystem path for a stored key.
func (b *LocalBackend) ResolvePath(key string) string {
	abs, err := filepath.Abs(filepath.Join(b.dir, key))
	if err != nil {
		return filepath.Join(b.dir, key)
	}
	return abs
}

// Delete removes a stored file. A missing file is not an error.
func (b *LocalBackend) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(b.dir, key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// uniqueKey builds a collision-resistant stored name from a fresh UUID plus
// the original file's extension.
func uniqueKey(fileName string) string {
	id := uuid.New()
	ext := strings.ToLower(filepath.Ext(fileName))
	return hex.EncodeToString(id[:]) + ext
}

// Compile-time check that LocalBackend implements Backend
var _ Backend = (*LocalBackend)(nil)
