package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hsakoda/contract-analyzer/constants"
	"github.com/hsakoda/contract-analyzer/internal/entity"
	"github.com/hsakoda/contract-analyzer/internal/imageprep"
	"github.com/hsakoda/contract-analyzer/internal/vision"
)

// visionStage is the last resort of the chain: rasterize (for PDFs),
// normalize each image and send it to the remote recognizer. Document
// confidence is the mean over the pages that recognized successfully.
type visionStage struct {
	renderer   *Renderer
	recognizer vision.Recognizer
	logger     *slog.Logger
}

func (s *visionStage) Name() string { return MethodVision }

func (s *visionStage) Attempt(ctx context.Context, path string) (entity.ExtractedDocument, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		return s.recognizePDF(ctx, path)
	case constants.IMAGE:
		return s.recognizeImages(ctx, []string{path})
	default:
		return entity.ExtractedDocument{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}

func (s *visionStage) recognizePDF(ctx context.Context, path string) (entity.ExtractedDocument, error) {
	tmpDir, err := os.MkdirTemp("", "ca-pp-*")
	if err != nil {
		return entity.ExtractedDocument{}, err
	}
	defer func(dir string) {
		if err := os.RemoveAll(dir); err != nil {
			s.logger.Warn("failed to remove temp dir", "dir", dir, "error", err)
		}
	}(tmpDir)

	images, err := s.renderer.Render(ctx, path, tmpDir)
	if err != nil {
		return entity.ExtractedDocument{}, err
	}
	return s.recognizeImages(ctx, images)
}

func (s *visionStage) recognizeImages(ctx context.Context, images []string) (entity.ExtractedDocument, error) {
	var (
		pages   []entity.Page
		confSum float64
		lastErr error
	)
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return entity.ExtractedDocument{}, err
		}
		prepared := imageprep.Preprocess(img, s.logger)
		res, err := s.recognizer.Recognize(ctx, prepared)
		if err != nil {
			s.logger.Warn("page recognition failed", "image", img, "page", i+1, "error", err)
			lastErr = err
			continue
		}
		pages = append(pages, entity.Page{
			PageNumber: i + 1,
			Text:       res.Text,
			Method:     MethodVision,
			Blocks:     res.Blocks,
		})
		confSum += res.Confidence
	}

	if len(pages) == 0 {
		if lastErr != nil {
			return entity.ExtractedDocument{}, lastErr
		}
		return entity.ExtractedDocument{}, ErrNoText
	}
	return entity.ExtractedDocument{
		Text:       joinPages(pages),
		Pages:      pages,
		Confidence: confSum / float64(len(pages)),
	}, nil
}
