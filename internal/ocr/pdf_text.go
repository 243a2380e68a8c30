package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hsakoda/contract-analyzer/internal/entity"
)

// ErrNoText is returned by a stage that ran cleanly but recovered
// nothing usable.
var ErrNoText = errors.New("no extractable text")

// pdfTextStage reads the embedded text layer page by page. This is the
// cheapest and most reliable path for digitally produced contracts;
// scanned documents have no text layer and fall through.
type pdfTextStage struct{}

func (pdfTextStage) Name() string { return MethodPDFText }

func (pdfTextStage) Attempt(ctx context.Context, path string) (doc entity.ExtractedDocument, err error) {
	// The pdf parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			doc = entity.ExtractedDocument{}
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return entity.ExtractedDocument{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []entity.Page
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return entity.ExtractedDocument{}, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, entity.Page{
			PageNumber: i,
			Text:       text,
			Method:     MethodPDFText,
		})
	}

	if len(pages) == 0 {
		return entity.ExtractedDocument{}, ErrNoText
	}
	return entity.ExtractedDocument{
		Text:       joinPages(pages),
		Pages:      pages,
		Confidence: pdfTextConfidence,
	}, nil
}
