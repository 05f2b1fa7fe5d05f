package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalBackendSaveProducesUniqueKeys(t *testing.T) {
	backend, err := NewLocalBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalBackend: %v", err)
	}

	ctx := context.Background()
	keyA, err := backend.Save(ctx, strings.NewReader("first"), "resume.pdf", 5)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	keyB, err := backend.Save(ctx, strings.NewReader("second"), "resume.pdf", 6)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if keyA == keyB {
		t.Fatalf("two saves of the same filename produced the same key %q", keyA)
	}
	if keyA == "resume.pdf" {
		t.Fatal("stored key must not equal the uploaded filename")
	}
	if !strings.HasSuffix(keyA, ".pdf") {
		t.Errorf("stored key %q should keep the .pdf extension", keyA)
	}

	content, err := os.ReadFile(backend.ResolvePath(keyA))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(content) != "first" {
		t.Errorf("stored content = %q, want %q", content, "first")
	}
}

func TestLocalBackendExtensionIsLowercased(t *testing.T) {
	backend, err := NewLocalBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalBackend: %v", err)
	}

	key, err := backend.Save(context.Background(), strings.NewReader("x"), "Resume.PDF", 1)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("stored key %q should carry a lowercase extension", key)
	}
}

func TestLocalBackendPublicURL(t *testing.T) {
	backend, err := NewLocalBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalBackend: %v", err)
	}

	url, err := backend.PublicURL(context.Background(), "abc123.pdf")
	if err != nil {
		t.Fatalf("PublicURL: %v", err)
	}
	if url != "/uploads/abc123.pdf" {
		t.Errorf("PublicURL = %q, want /uploads/abc123.pdf", url)
	}
}

func TestLocalBackendDelete(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewLocalBackend(dir)
	if err != nil {
		t.Fatalf("NewLocalBackend: %v", err)
	}

	ctx := context.Background()
	key, err := backend.Save(ctx, strings.NewReader("bye"), "resume.doc", 3)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := backend.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, key)); !os.IsNotExist(err) {
		t.Errorf("file %s should be gone after delete", key)
	}

	// Deleting a missing key is not an error.
	if err := backend.Delete(ctx, "missing.pdf"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}
