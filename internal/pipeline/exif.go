package pipeline

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// OrientationFromBytes reads the EXIF orientation tag from raw image bytes.
// Only the primary image block is consulted; thumbnail IFDs are ignored.
// A missing or corrupt EXIF container yields OrientationNone, never an error:
// most non-JPEG inputs simply carry no metadata.
func OrientationFromBytes(data []byte) Orientation {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return OrientationNone
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return OrientationNone
	}
	v, err := tag.Int(0)
	if err != nil || v < 1 || v > 8 {
		return OrientationNone
	}
	return Orientation(v)
}

// ResolveOrientation combines the metadata tag with a decoder-reported hint.
// The metadata tag wins whenever it is present; real-world files carry
// inconsistent hints and the EXIF block is the authoritative one.
func ResolveOrientation(metaTag, decoderHint Orientation) Orientation {
	if metaTag != OrientationNone {
		return metaTag
	}
	return decoderHint
}

// Apply re-orients img so it displays upright. Unknown values return the
// image unchanged.
func (o Orientation) Apply(img image.Image) image.Image {
	switch o {
	case OrientationFlipH:
		return imaging.FlipH(img)
	case OrientationRotate180:
		return imaging.Rotate180(img)
	case OrientationFlipV:
		return imaging.FlipV(img)
	case OrientationTranspose:
		return imaging.Transpose(img)
	case OrientationRotate90:
		// imaging rotates counter-clockwise; displaying needs 90 CW here.
		return imaging.Rotate270(img)
	case OrientationTransverse:
		return imaging.Transverse(img)
	case OrientationRotate270:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
