package ocr

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Preflight validates the PDF structure and returns its page count
// before the recovery chain spends time on it. A corrupt file fails
// here with a clear error instead of surfacing as three opaque stage
// failures.
func Preflight(path string) (int, error) {
	if err := api.ValidateFile(path, nil); err != nil {
		return 0, fmt.Errorf("pdf validation: %w", err)
	}
	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("pdf page count: %w", err)
	}
	return pages, nil
}
