package pipeline

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// TargetSize computes the dimensions that fit (origW, origH) within maxSide,
// preserving aspect ratio. Pure function: images already within the bound are
// returned unchanged (no upscaling), otherwise the longer side becomes
// maxSide and the shorter side is scaled by the same ratio, rounded to the
// nearest integer and floored at 1.
func TargetSize(origW, origH, maxSide int) (int, int) {
	if maxSide <= 0 {
		return origW, origH
	}
	if origW <= maxSide && origH <= maxSide {
		return origW, origH
	}

	if origW >= origH {
		ratio := float64(maxSide) / float64(origW)
		h := int(math.Round(float64(origH) * ratio))
		if h < 1 {
			h = 1
		}
		return maxSide, h
	}
	ratio := float64(maxSide) / float64(origH)
	w := int(math.Round(float64(origW) * ratio))
	if w < 1 {
		w = 1
	}
	return w, maxSide
}

// Resize downsamples img so neither side exceeds maxSide, preserving aspect
// ratio. Smaller images are returned as-is. Uses Lanczos resampling.
func Resize(img image.Image, maxSide int) image.Image {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	if w <= 0 || h <= 0 {
		return img
	}
	if w <= maxSide && h <= maxSide {
		return img
	}

	nw, nh := TargetSize(w, h, maxSide)
	return imaging.Resize(img, nw, nh, imaging.Lanczos)
}
