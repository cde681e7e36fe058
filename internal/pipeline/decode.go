package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	webp "github.com/chai2010/webp"
	"golang.org/x/image/bmp"

	// Registered for the generic image.Decode fallback below.
	_ "image/gif"

	_ "github.com/gen2brain/avif"
	_ "golang.org/x/image/tiff"
)

// DetectFormat sniffs the MIME type from the leading bytes of data. The file
// extension or declared label is deliberately not trusted; mislabeled inputs
// are common.
func DetectFormat(data []byte) string {
	return http.DetectContentType(data)
}

// DecodeUpright decodes raw image bytes and applies the resolved EXIF
// orientation so the returned image displays upright. The codec is detected
// from content. Returns the image, the sniffed MIME type, and an error
// wrapping ErrDecodeFailed when the bytes cannot be decoded.
func DecodeUpright(data []byte) (image.Image, string, error) {
	ct := DetectFormat(data)

	var img image.Image
	var err error

	switch {
	case strings.HasPrefix(ct, "image/jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(data))
	case strings.HasPrefix(ct, "image/png"):
		img, err = png.Decode(bytes.NewReader(data))
	case strings.HasPrefix(ct, "image/webp"):
		img, err = webp.Decode(bytes.NewReader(data))
	case strings.HasPrefix(ct, "image/bmp"):
		img, err = bmp.Decode(bytes.NewReader(data))
	default:
		// gif, tiff, avif and anything else with a registered decoder
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, ct, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	// None of the decoders above surface an orientation hint of their own,
	// so the decoder side of the precedence rule is always "none" here.
	orient := ResolveOrientation(OrientationFromBytes(data), OrientationNone)
	return orient.Apply(img), ct, nil
}
