package pipeline

import (
	"bytes"

	"github.com/disintegration/imaging"
)

// Options controls Optimize.
type Options struct {
	MaxWidth  int    // maximum width in pixels, 0 = unbounded
	MaxHeight int    // maximum height in pixels, 0 = unbounded
	Quality   int    // 1-100 for lossy codecs, 0 = DefaultQuality
	Format    string // "jpeg", "jpg", "png", "webp", "avif" or "auto"
}

// Optimize decodes raw image bytes, conditionally downsamples them to fit
// the configured bounds, and re-encodes to the requested codec. Resizing
// only triggers when a dimension exceeds its bound and always preserves
// aspect ratio: the effective bound acts as a max-side constraint on both
// axes jointly, never as an independent per-axis stretch.
func Optimize(data []byte, opts Options) ([]byte, error) {
	img, _, err := DecodeUpright(data)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()

	if (opts.MaxWidth > 0 && w > opts.MaxWidth) || (opts.MaxHeight > 0 && h > opts.MaxHeight) {
		maxSide := maxSideBound(opts.MaxWidth, opts.MaxHeight, w, h)
		nw, nh := TargetSize(w, h, maxSide)
		img = imaging.Resize(img, nw, nh, imaging.Lanczos)
	}

	quality := opts.Quality
	if quality == 0 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	if err := Encode(img, &buf, ParseCodec(opts.Format), quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// maxSideBound folds the width/height constraints into a single max-side
// value: with both set, the smaller wins so the result fits within both.
func maxSideBound(maxW, maxH, origW, origH int) int {
	switch {
	case maxW > 0 && maxH > 0:
		if maxW < maxH {
			return maxW
		}
		return maxH
	case maxW > 0:
		return maxW
	case maxH > 0:
		return maxH
	default:
		if origW > origH {
			return origW
		}
		return origH
	}
}
