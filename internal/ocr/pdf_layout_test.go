package ocr

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

func ch(s string, x, y float64) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: 10, FontSize: 10}
}

func TestAssembleRowsOrdersByPosition(t *testing.T) {
	// Content stream order is scrambled; visual order is two rows.
	chars := []pdf.Text{
		ch("約", 10, 700),
		ch("甲", 0, 680),
		ch("契", 0, 700),
		ch("書", 20, 700),
		ch("乙", 10, 680),
	}

	got := assembleRows(chars)
	if got != "契約書\n甲乙" {
		t.Fatalf("assembleRows = %q", got)
	}
}

func TestAssembleRowsInsertsWordGaps(t *testing.T) {
	chars := []pdf.Text{
		ch("A", 0, 500),
		ch("B", 10, 500),
		// 30pt gap, well over 0.3 * font size
		ch("C", 50, 500),
	}

	got := assembleRows(chars)
	if got != "AB C" {
		t.Fatalf("assembleRows = %q", got)
	}
}

func TestAssembleRowsToleratesJitter(t *testing.T) {
	// 2pt of Y jitter stays within one row.
	chars := []pdf.Text{
		ch("a", 0, 100),
		ch("b", 10, 102),
		ch("c", 20, 99),
	}

	got := assembleRows(chars)
	if got != "abc" {
		t.Fatalf("assembleRows = %q", got)
	}
}

func TestAssembleRowsSkipsWhitespaceChars(t *testing.T) {
	chars := []pdf.Text{
		ch(" ", 0, 100),
		ch("\n", 5, 100),
	}

	if got := assembleRows(chars); got != "" {
		t.Fatalf("assembleRows = %q, want empty", got)
	}
}

func TestAssembleRowsEmpty(t *testing.T) {
	if got := assembleRows(nil); got != "" {
		t.Fatalf("assembleRows(nil) = %q", got)
	}
}
