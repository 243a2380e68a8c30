package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hsakoda/contract-analyzer/gen/ent"
)

type recordingDocsRepo struct {
	created []string // source paths in creation order
	failOn  string   // source ref that makes Create fail
}

func (r *recordingDocsRepo) Create(ctx context.Context, sourceRef, sourcePath, fileExt, format string) (*ent.Document, error) {
	if r.failOn != "" && sourceRef == r.failOn {
		return nil, errors.New("duplicate source ref")
	}
	r.created = append(r.created, sourcePath)
	return &ent.Document{
		ID:         uuid.New(),
		SourceRef:  sourceRef,
		SourcePath: sourcePath,
		FileExt:    fileExt,
		Format:     format,
		UploadedAt: time.Now(),
	}, nil
}

func (r *recordingDocsRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingDocsRepo) List(ctx context.Context) ([]*ent.Document, error) {
	return nil, nil
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestIngestPath(t *testing.T) {
	repo := &recordingDocsRepo{}
	in := NewFSIngestor(repo, nil)

	doc, err := in.IngestPath(context.Background(), "testdata/keiyaku.PDF")
	if err != nil {
		t.Fatalf("IngestPath: %v", err)
	}
	if doc.FileExt != "pdf" {
		t.Fatalf("extension not normalized: %q", doc.FileExt)
	}
	if doc.Format != "PDF" {
		t.Fatalf("format = %q", doc.Format)
	}
	if !filepath.IsAbs(doc.SourcePath) {
		t.Fatalf("source path not absolute: %q", doc.SourcePath)
	}
	if doc.SourceRef != "keiyaku.PDF" {
		t.Fatalf("source ref = %q", doc.SourceRef)
	}
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	in := NewFSIngestor(&recordingDocsRepo{}, nil)

	for _, path := range []string{"a.docx", "b.txt", "noext"} {
		if _, err := in.IngestPath(context.Background(), path); err == nil {
			t.Fatalf("IngestPath(%q) accepted an unsupported extension", path)
		}
	}
}

func TestIngestDirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.pdf"))
	touch(t, filepath.Join(root, "b.png"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "sub", "c.jpg"))

	repo := &recordingDocsRepo{}
	in := NewFSIngestor(repo, nil)

	docs, stats, err := in.IngestDirectory(context.Background(), root, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Scanned != 4 || stats.Matched != 3 || stats.Succeeded != 3 || stats.Failed != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3", len(docs))
	}
}

func TestIngestDirectorySkipsHidden(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.pdf"))
	touch(t, filepath.Join(root, ".cache", "b.pdf"))
	touch(t, filepath.Join(root, ".hidden.pdf"))

	repo := &recordingDocsRepo{}
	in := NewFSIngestor(repo, nil)

	_, stats, err := in.IngestDirectory(context.Background(), root, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Scanned != 1 || stats.Succeeded != 1 {
		t.Fatalf("hidden entries not skipped: %+v", stats)
	}
	if len(repo.created) != 1 || !strings.HasSuffix(repo.created[0], "a.pdf") {
		t.Fatalf("created = %v", repo.created)
	}

	// With skipHidden off, the hidden entries are walked too.
	repo2 := &recordingDocsRepo{}
	in2 := NewFSIngestor(repo2, nil)
	_, stats2, err := in2.IngestDirectory(context.Background(), root, false)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats2.Scanned != 3 || stats2.Succeeded != 3 {
		t.Fatalf("stats without skipHidden = %+v", stats2)
	}
}

func TestIngestDirectoryCountsFailures(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "ok.pdf"))
	touch(t, filepath.Join(root, "bad.pdf"))

	repo := &recordingDocsRepo{failOn: "bad.pdf"}
	in := NewFSIngestor(repo, nil)

	docs, stats, err := in.IngestDirectory(context.Background(), root, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Matched != 2 || stats.Succeeded != 1 || stats.Failed != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
}
