package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFSFetcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.pdf")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFSFetcher(nil).Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != path {
		t.Fatalf("Fetch = %q, want %q", got, path)
	}
}

func TestFSFetcherMissingFile(t *testing.T) {
	if _, err := NewFSFetcher(nil).Fetch(context.Background(), "/no/such/file.pdf"); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestFSFetcherRejectsDirectory(t *testing.T) {
	if _, err := NewFSFetcher(nil).Fetch(context.Background(), t.TempDir()); err == nil {
		t.Fatal("directory accepted as a source")
	}
}

func TestFSFetcherCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFSFetcher(nil).Fetch(ctx, "whatever.pdf"); err == nil {
		t.Fatal("cancelled context accepted")
	}
}
