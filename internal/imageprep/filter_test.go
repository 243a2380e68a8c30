package imageprep

import (
	"image"
	"testing"
)

func grayImage(w, h int, fill byte) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = fill
	}
	return img
}

func TestMedianFilterRemovesSpeckle(t *testing.T) {
	img := grayImage(9, 9, 255)
	// single dark speck in a white field
	img.Pix[4*img.Stride+4] = 0

	out := medianFilter(img, 1)

	if got := out.GrayAt(4, 4).Y; got != 255 {
		t.Fatalf("speck survived median filter: %d", got)
	}
}

func TestMedianFilterPreservesUniform(t *testing.T) {
	img := grayImage(8, 8, 128)

	out := medianFilter(img, 1)

	for i, p := range out.Pix {
		if p != 128 {
			t.Fatalf("uniform image changed at %d: %d", i, p)
		}
	}
}

func TestOtsuThresholdBimodal(t *testing.T) {
	// Two well-separated populations: threshold must fall between them.
	var hist [256]int
	hist[40] = 500
	hist[200] = 500

	th := otsuThreshold(hist, 1000)

	if th < 40 || th >= 200 {
		t.Fatalf("threshold %d outside the bimodal gap", th)
	}
}

func TestOtsuBinarizeProducesPureBlackAndWhite(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := byte(30)
			if x >= 8 {
				v = 220
			}
			img.Pix[y*img.Stride+x] = v
		}
	}

	out := otsuBinarize(img)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			got := out.GrayAt(x, y).Y
			if got != 0 && got != 255 {
				t.Fatalf("pixel (%d,%d) = %d, want 0 or 255", x, y, got)
			}
			if x < 8 && got != 0 {
				t.Fatalf("dark half binarized to white at (%d,%d)", x, y)
			}
			if x >= 8 && got != 255 {
				t.Fatalf("light half binarized to black at (%d,%d)", x, y)
			}
		}
	}
}

func TestCLAHEKeepsDimensionsAndRange(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 64, 48))
	// low-contrast gradient
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Pix[y*img.Stride+x] = byte(100 + x/4)
		}
	}

	out := clahe(img, 8, 8, 2.0)

	if out.Rect.Dx() != 64 || out.Rect.Dy() != 48 {
		t.Fatalf("dimensions changed: %v", out.Rect)
	}
}

func TestCLAHEDeterministic(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 32, 32))
	for i := range img.Pix {
		img.Pix[i] = byte((i * 37) % 251)
	}

	a := clahe(img, 8, 8, 2.0)
	b := clahe(img, 8, 8, 2.0)

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("clahe not deterministic at %d", i)
		}
	}
}
