package pipeline

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"strings"

	webp "github.com/chai2010/webp"
	"github.com/gen2brain/avif"
)

// DefaultQuality is the standard quality used for lossy encoding when the
// caller supplies none.
const DefaultQuality = 80

// DefaultAVIFSpeed is the standard speed used for AVIF encoding.
const DefaultAVIFSpeed = 6

// Codec is the closed set of output encoders. A format label is resolved to
// a Codec exactly once, at the operation boundary; the pipeline itself never
// compares strings.
type Codec int

const (
	CodecJPEG Codec = iota
	CodecPNG
	CodecWebP
	CodecAVIF
)

func (c Codec) String() string {
	switch c {
	case CodecJPEG:
		return "jpeg"
	case CodecPNG:
		return "png"
	case CodecWebP:
		return "webp"
	case CodecAVIF:
		return "avif"
	default:
		return "unknown"
	}
}

// ParseCodec maps a format label to a Codec, case-insensitively. "auto" and
// any unrecognized label fall back to PNG.
func ParseCodec(format string) Codec {
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		return CodecJPEG
	case "png":
		return CodecPNG
	case "webp":
		return CodecWebP
	case "avif":
		return CodecAVIF
	default:
		return CodecPNG
	}
}

// ClampQuality bounds q to [1, 100]. Out-of-range values are never an error.
func ClampQuality(q int) int {
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

// Encode writes img to w using the given codec at the given quality
// (clamped; ignored by the lossless PNG branch). It logs the final encoded
// size. Encoder and writer errors wrap ErrEncodeFailed.
func Encode(img image.Image, w io.Writer, codec Codec, quality int) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrEncodeFailed)
	}
	if w == nil {
		return fmt.Errorf("%w: nil writer", ErrEncodeFailed)
	}
	quality = ClampQuality(quality)

	// counting writer to capture encoded size
	c := &countingWriter{w: w}

	var err error
	switch codec {
	case CodecJPEG:
		err = jpeg.Encode(c, img, &jpeg.Options{Quality: quality})
	case CodecWebP:
		err = webp.Encode(c, img, &webp.Options{Quality: float32(quality)})
	case CodecAVIF:
		err = avif.Encode(c, img, avif.Options{Quality: quality, QualityAlpha: quality, Speed: DefaultAVIFSpeed})
	default:
		err = png.Encode(c, img)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	log.Printf("encoded codec=%s size=%d quality=%d", codec, c.n, quality)
	return nil
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	m, err := c.w.Write(p)
	c.n += int64(m)
	return m, err
}
