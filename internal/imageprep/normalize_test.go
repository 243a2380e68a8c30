package imageprep

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func TestPreprocessMissingFileReturnsOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.png")

	if got := Preprocess(path, nil); got != path {
		t.Fatalf("Preprocess = %q, want original path on failure", got)
	}
}

func TestPreprocessWritesSiblingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.png")

	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			v := uint8(60)
			if x > 16 {
				v = 190
			}
			img.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}

	out := Preprocess(path, nil)

	if out == path {
		t.Fatal("Preprocess returned original path for a readable image")
	}
	if filepath.Dir(out) != dir {
		t.Fatalf("output not a sibling: %q", out)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("original was touched: %v", err)
	}
}

func TestProcessedPath(t *testing.T) {
	if got := processedPath("/tmp/a/scan.png"); got != "/tmp/a/scan_processed.png" {
		t.Fatalf("processedPath = %q", got)
	}
	if got := processedPath("doc.jpeg"); got != "doc_processed.jpeg" {
		t.Fatalf("processedPath = %q", got)
	}
}
