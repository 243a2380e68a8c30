// Package storage materializes document sources as local files so the
// extraction chain always works on a path it can open.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Fetcher resolves a stored source reference to a readable local path.
// Implementations for remote stores download into a scratch directory;
// the filesystem implementation just verifies and absolutizes.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) (string, error)
}

// FSFetcher serves sources that already live on the local filesystem.
type FSFetcher struct {
	logger *slog.Logger
}

func NewFSFetcher(logger *slog.Logger) *FSFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSFetcher{logger: logger}
}

func (f *FSFetcher) Fetch(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(ref)
	if err != nil {
		return "", fmt.Errorf("resolve source %q: %w", ref, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("source unavailable: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("source %q is a directory", abs)
	}
	f.logger.Debug("source materialized", "ref", ref, "path", abs, "bytes", info.Size())
	return abs, nil
}
