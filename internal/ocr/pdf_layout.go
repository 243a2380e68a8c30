package ocr

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hsakoda/contract-analyzer/internal/entity"
)

const (
	// Y tolerance for grouping positioned characters into one row.
	rowTolerance = 3.0
	// Gap wider than this fraction of the font size starts a new word.
	wordSpaceMultiplier = 0.3
)

// pdfLayoutStage rebuilds text from positioned characters. Some PDFs
// carry glyph positions but scramble the content stream order, so the
// plain text layer comes out empty or garbled; walking characters in
// visual order recovers a readable page.
type pdfLayoutStage struct{}

func (pdfLayoutStage) Name() string { return MethodPDFLayout }

func (pdfLayoutStage) Attempt(ctx context.Context, path string) (doc entity.ExtractedDocument, err error) {
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
		text := assembleRows(page.Content().Text)
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, entity.Page{
			PageNumber: i,
			Text:       text,
			Method:     MethodPDFLayout,
		})
	}

	if len(pages) == 0 {
		return entity.ExtractedDocument{}, ErrNoText
	}
	return entity.ExtractedDocument{
		Text:       joinPages(pages),
		Pages:      pages,
		Confidence: pdfLayoutConfidence,
	}, nil
}

// assembleRows groups positioned characters into rows by Y coordinate,
// orders each row left to right and joins rows top to bottom. PDF Y
// grows upward, so a higher Y means higher on the page.
func assembleRows(chars []pdf.Text) string {
	filtered := make([]pdf.Text, 0, len(chars))
	for _, c := range chars {
		if strings.TrimSpace(c.S) != "" {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		return ""
	}

	type row struct {
		yMin, yMax float64
		chars      []pdf.Text
	}
	var rows []row
	for _, c := range filtered {
		placed := false
		for i := range rows {
			if c.Y >= rows[i].yMin-rowTolerance && c.Y <= rows[i].yMax+rowTolerance {
				rows[i].chars = append(rows[i].chars, c)
				rows[i].yMin = math.Min(rows[i].yMin, c.Y)
				rows[i].yMax = math.Max(rows[i].yMax, c.Y)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{yMin: c.Y, yMax: c.Y, chars: []pdf.Text{c}})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].yMax > rows[j].yMax })

	var sb strings.Builder
	for ri, r := range rows {
		sort.SliceStable(r.chars, func(i, j int) bool { return r.chars[i].X < r.chars[j].X })
		if ri > 0 {
			sb.WriteByte('\n')
		}
		for ci, c := range r.chars {
			if ci > 0 {
				prev := r.chars[ci-1]
				gap := c.X - (prev.X + prev.W)
				threshold := wordSpaceMultiplier * c.FontSize
				if threshold == 0 {
					threshold = 3.0
				}
				if gap > threshold {
					sb.WriteByte(' ')
				}
			}
			sb.WriteString(c.S)
		}
	}
	return sb.String()
}
