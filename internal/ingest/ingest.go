// Package ingest registers contract files from the local filesystem so
// the pipeline can pick them up.
package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hsakoda/contract-analyzer/constants"
	"github.com/hsakoda/contract-analyzer/internal/entity"
	"github.com/hsakoda/contract-analyzer/internal/repository"
	"github.com/hsakoda/contract-analyzer/internal/utils"
)

// Stats summarizes one directory walk.
type Stats struct {
	Scanned   int32
	Matched   int32
	Succeeded int32
	Failed    int32
}

type Ingestor interface {
	IngestPath(ctx context.Context, path string) (*entity.Document, error)
	IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]*entity.Document, Stats, error)
}

type FSIngestor struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewFSIngestor(docs repository.DocumentRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{docs: docs, logger: logger}
}

// IngestPath registers one file as a document. The extension decides
// whether the file is accepted at all.
func (in *FSIngestor) IngestPath(ctx context.Context, path string) (*entity.Document, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("unsupported file extension: %q", ext)
	}
	format := constants.MapExtToFormat(ext)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	row, err := in.docs.Create(ctx, filepath.Base(abs), abs, ext, format)
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(row), nil
}

// IngestDirectory walks root and registers every file with an accepted
// extension. Individual failures are counted, not fatal.
func (in *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]*entity.Document, Stats, error) {
	var (
		docs  []*entity.Document
		stats Stats
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		name := d.Name()
		if skipHidden && strings.HasPrefix(name, ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++

		ext := constants.NormalizeExt(filepath.Ext(name))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		stats.Matched++

		doc, err := in.IngestPath(ctx, path)
		if err != nil {
			stats.Failed++
			in.logger.Error("directory ingest entry failed", "path", path, "error", err)
			return nil
		}
		stats.Succeeded++
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return docs, stats, err
	}

	in.logger.Info("directory ingest completed",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
	)
	return docs, stats, nil
}
