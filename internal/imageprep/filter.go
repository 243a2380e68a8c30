package imageprep

import (
	"image"
	"sort"
)

// medianFilter replaces every pixel with the median of its
// (2*radius+1)² neighborhood, clamping at the borders. Radius 1 is the
// classic 3×3 aperture that kills speckle noise without softening
// character edges.
func medianFilter(src *image.Gray, radius int) *image.Gray {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	window := make([]byte, 0, (2*radius+1)*(2*radius+1))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			window = window[:0]
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					window = append(window, src.GrayAt(clamp(x+dx, w-1), clamp(y+dy, h-1)).Y)
				}
			}
			sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
			out.Pix[y*out.Stride+x] = window[len(window)/2]
		}
	}
	return out
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// clahe applies contrast-limited adaptive histogram equalization over a
// tilesX×tilesY grid. Each tile gets a clipped, redistributed histogram
// mapping; pixel values are bilinearly interpolated between the four
// surrounding tile mappings to avoid visible tile seams. clipLimit is
// relative (2.0 means a histogram bin may hold at most twice the mean
// tile population).
func clahe(src *image.Gray, tilesX, tilesY int, clipLimit float64) *image.Gray {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w == 0 || h == 0 {
		return src
	}
	tileW := (w + tilesX - 1) / tilesX
	tileH := (h + tilesY - 1) / tilesY

	// Per-tile equalization lookup tables.
	luts := make([][256]byte, tilesX*tilesY)
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0, y0 := tx*tileW, ty*tileH
			x1, y1 := min(x0+tileW, w), min(y0+tileH, h)
			luts[ty*tilesX+tx] = tileLUT(src, x0, y0, x1, y1, clipLimit)
		}
	}

	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		// Tile-space coordinate of the pixel center.
		fy := (float64(y)+0.5)/float64(tileH) - 0.5
		ty0 := clamp(int(fy), tilesY-1)
		ty1 := clamp(ty0+1, tilesY-1)
		wy := fy - float64(ty0)
		if wy < 0 {
			wy = 0
		} else if wy > 1 {
			wy = 1
		}
		for x := 0; x < w; x++ {
			fx := (float64(x)+0.5)/float64(tileW) - 0.5
			tx0 := clamp(int(fx), tilesX-1)
			tx1 := clamp(tx0+1, tilesX-1)
			wx := fx - float64(tx0)
			if wx < 0 {
				wx = 0
			} else if wx > 1 {
				wx = 1
			}

			v := src.GrayAt(x, y).Y
			tl := float64(luts[ty0*tilesX+tx0][v])
			tr := float64(luts[ty0*tilesX+tx1][v])
			bl := float64(luts[ty1*tilesX+tx0][v])
			br := float64(luts[ty1*tilesX+tx1][v])
			top := tl + (tr-tl)*wx
			bottom := bl + (br-bl)*wx
			out.Pix[y*out.Stride+x] = byte(top + (bottom-top)*wy + 0.5)
		}
	}
	return out
}

// tileLUT builds the clipped-equalization mapping for one tile.
func tileLUT(src *image.Gray, x0, y0, x1, y1 int, clipLimit float64) [256]byte {
	var hist [256]int
	total := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			hist[src.GrayAt(x, y).Y]++
			total++
		}
	}

	var lut [256]byte
	if total == 0 {
		for i := range lut {
			lut[i] = byte(i)
		}
		return lut
	}

	// Clip bins and spread the excess evenly across all bins.
	clip := int(clipLimit * float64(total) / 256.0)
	if clip < 1 {
		clip = 1
	}
	excess := 0
	for i := range hist {
		if hist[i] > clip {
			excess += hist[i] - clip
			hist[i] = clip
		}
	}
	spread := excess / 256
	rem := excess % 256
	for i := range hist {
		hist[i] += spread
		if i < rem {
			hist[i]++
		}
	}

	// Cumulative distribution scaled to the full 8-bit range.
	cum := 0
	for i := range hist {
		cum += hist[i]
		lut[i] = byte((cum*255 + total/2) / total)
	}
	return lut
}

// otsuBinarize thresholds at the histogram split that maximizes
// between-class variance, then maps to pure black and white.
func otsuBinarize(src *image.Gray) *image.Gray {
	w, h := src.Rect.Dx(), src.Rect.Dy()

	var hist [256]int
	total := w * h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hist[src.GrayAt(x, y).Y]++
		}
	}

	threshold := otsuThreshold(hist, total)

	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if src.GrayAt(x, y).Y > threshold {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}

func otsuThreshold(hist [256]int, total int) byte {
	if total == 0 {
		return 0
	}
	sum := 0.0
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	var (
		sumB, wB  float64
		best      float64
		threshold byte
	)
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > best {
			best = between
			threshold = byte(t)
		}
	}
	return threshold
}
