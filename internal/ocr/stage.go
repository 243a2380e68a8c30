package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/hsakoda/contract-analyzer/internal/entity"
)

// Method names reported on recovered pages.
const (
	MethodPDFText   = "pdf-text"
	MethodPDFLayout = "pdf-layout"
	MethodVision    = "vision"
)

// Fixed confidences for the structural PDF stages. Structural
// extraction either works or it doesn't, so a constant stands in for a
// measured value. The vision adapter reports measured confidences.
const (
	pdfTextConfidence   = 0.90
	pdfLayoutConfidence = 0.85
)

// Stage is one attempt in the text recovery chain. An empty document
// with a nil error and a non-nil error are treated the same by the
// chain: move on to the next stage.
type Stage interface {
	Name() string
	Attempt(ctx context.Context, path string) (entity.ExtractedDocument, error)
}

// joinPages renders the combined document text with page markers, one
// marker per recovered page.
func joinPages(pages []entity.Page) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		parts = append(parts, fmt.Sprintf("--- Page %d ---\n%s", p.PageNumber, p.Text))
	}
	return strings.Join(parts, "\n\n")
}
