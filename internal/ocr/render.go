package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
)

// Renderer rasterizes PDF pages to PNG via pdftoppm so scanned
// documents can go through the vision adapter.
type Renderer struct {
	pdftoppm string
	dpi      int
	maxPages int
	runner   Runner
	logger   *slog.Logger
}

func NewRenderer(pdftoppm string, dpi, maxPages int, runner Runner, logger *slog.Logger) *Renderer {
	if pdftoppm == "" {
		pdftoppm = "pdftoppm"
	}
	if dpi <= 0 {
		dpi = 300
	}
	if runner == nil {
		runner = execRunner{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{pdftoppm: pdftoppm, dpi: dpi, maxPages: maxPages, runner: runner, logger: logger}
}

// Render writes one PNG per page into dir and returns the image paths
// in page order, capped at maxPages when a cap is configured.
func (r *Renderer) Render(ctx context.Context, pdfPath, dir string) ([]string, error) {
	prefix := filepath.Join(dir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <dir/page>
	_, errb, err := r.runner.Run(ctx, r.pdftoppm, "-r", fmt.Sprintf("%d", r.dpi), "-png", pdfPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm: %w (stderr: %s)", err, truncate(string(errb), 1<<10))
	}

	// pdftoppm names output prefix-1.png, prefix-2.png, ...
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if r.maxPages > 0 && len(matches) > r.maxPages {
		r.logger.Warn("page cap applied", "pdf", pdfPath, "rendered", len(matches), "cap", r.maxPages)
		matches = matches[:r.maxPages]
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no images for %q", pdfPath)
	}
	return matches, nil
}
