// Package imageprep normalizes scanned contract images before optical
// recognition: grayscale, speckle removal, local contrast equalization
// and binarization. The pipeline is deterministic; the same input file
// always yields the same output bytes.
package imageprep

import (
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Preprocess runs the normalization pipeline against the image at path
// and writes the result next to it as <name>_processed<ext>. It never
// fails to the caller: on any error the original path is returned and
// recognition proceeds against the unprocessed image.
func Preprocess(path string, logger *slog.Logger) string {
	if logger == nil {
		logger = slog.Default()
	}

	src, err := imaging.Open(path)
	if err != nil {
		logger.Warn("image preprocessing skipped", "path", path, "error", err)
		return path
	}

	gray := toGray(imaging.Grayscale(src))
	gray = medianFilter(gray, 1)
	gray = clahe(gray, 8, 8, 2.0)
	binary := otsuBinarize(gray)

	out := processedPath(path)
	if err := imaging.Save(binary, out); err != nil {
		logger.Warn("saving preprocessed image failed", "path", out, "error", err)
		return path
	}
	logger.Debug("image preprocessed", "src", path, "dst", out)
	return out
}

// processedPath derives the sibling output path: scan.png -> scan_processed.png.
func processedPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_processed" + ext
}

// toGray flattens an already-grayscaled NRGBA image into a single
// luminance channel. Grayscale output has R == G == B, so the red
// channel is the luminance.
func toGray(img *image.NRGBA) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetGray(x, y, color.Gray{Y: img.NRGBAAt(b.Min.X+x, b.Min.Y+y).R})
		}
	}
	return out
}
