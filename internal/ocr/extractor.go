// Package ocr recovers text from contract documents through a cascade
// of strategies: embedded PDF text, positional layout reconstruction,
// then remote optical recognition of rasterized pages. The first stage
// that yields text wins; a document where every stage fails comes back
// empty with confidence zero rather than as an error.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/hsakoda/contract-analyzer/constants"
	"github.com/hsakoda/contract-analyzer/internal/entity"
	"github.com/hsakoda/contract-analyzer/internal/vision"
)

type Config struct {
	Pdftoppm string // binary name or absolute path; if empty -> "pdftoppm"

	DPI      int // rasterization DPI for scanned PDFs, default 300
	MaxPages int // 0 = no limit

	ArtifactCacheDir string
}

type Extractor struct {
	cfg         Config
	pdfStages   []Stage
	imageStages []Stage
	preflight   func(path string) (int, error)
	logger      *slog.Logger
}

func NewExtractor(cfg Config, recognizer vision.Recognizer, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.ArtifactCacheDir == "" {
		cfg.ArtifactCacheDir = "./tmp"
	}

	renderer := NewRenderer(cfg.Pdftoppm, cfg.DPI, cfg.MaxPages, nil, logger)
	visual := &visionStage{renderer: renderer, recognizer: recognizer, logger: logger}

	return &Extractor{
		cfg:         cfg,
		pdfStages:   []Stage{pdfTextStage{}, pdfLayoutStage{}, visual},
		imageStages: []Stage{visual},
		preflight:   Preflight,
		logger:      logger,
	}
}

// Extract runs the recovery chain for the document at path. The error
// is non-nil only for unsupported file types and cancelled contexts;
// when every stage merely fails to recover text the result is an empty
// document whose metadata carries the last stage failure.
func (e *Extractor) Extract(ctx context.Context, path string) (entity.ExtractedDocument, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))

	var stages []Stage
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		if e.preflight != nil {
			pages, err := e.preflight(path)
			if err != nil {
				e.logger.Warn("pdf preflight failed", "path", path, "error", err)
				return entity.ExtractedDocument{Metadata: map[string]string{"error": err.Error()}}, nil
			}
			e.logger.Debug("pdf preflight ok", "path", path, "pages", pages)
		}
		stages = e.pdfStages
	case constants.IMAGE:
		stages = e.imageStages
	default:
		e.logger.Error("unsupported extension", "extension", ext)
		return entity.ExtractedDocument{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	var lastErr error
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return entity.ExtractedDocument{}, err
		}
		doc, err := stage.Attempt(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return entity.ExtractedDocument{}, ctx.Err()
			}
			e.logger.Warn("extraction stage failed",
				"stage", stage.Name(), "path", path, "error", err)
			lastErr = err
			continue
		}
		if doc.Empty() || strings.TrimSpace(doc.Text) == "" {
			e.logger.Debug("extraction stage recovered nothing", "stage", stage.Name(), "path", path)
			continue
		}
		if doc.Metadata == nil {
			doc.Metadata = map[string]string{}
		}
		doc.Metadata["method"] = stage.Name()
		e.logger.Info("text recovered",
			"stage", stage.Name(),
			"path", path,
			"pages", len(doc.Pages),
			"confidence", doc.Confidence,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return doc, nil
	}

	e.logger.Warn("all extraction stages exhausted", "path", path, "error", lastErr)
	out := entity.ExtractedDocument{Metadata: map[string]string{}}
	if lastErr != nil {
		out.Metadata["error"] = lastErr.Error()
	}
	return out, nil
}
