package pipeline

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

// jpegWithOrientation encodes a blank JPEG and splices in a minimal EXIF
// APP1 segment carrying only the orientation tag in the primary IFD.
func jpegWithOrientation(t *testing.T, w, h int, orientation byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	base := buf.Bytes()

	tiff := []byte{
		'I', 'I', 0x2a, 0x00, // little-endian TIFF header
		0x08, 0x00, 0x00, 0x00, // IFD0 at offset 8
		0x01, 0x00, // one entry
		0x12, 0x01, // tag 0x0112 Orientation
		0x03, 0x00, // type SHORT
		0x01, 0x00, 0x00, 0x00, // count 1
		orientation, 0x00, 0x00, 0x00, // value
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}
	payload := append([]byte("Exif\x00\x00"), tiff...)
	app1 := []byte{0xff, 0xe1, byte((len(payload) + 2) >> 8), byte(len(payload) + 2)}
	app1 = append(app1, payload...)

	// insert APP1 right after SOI
	out := make([]byte, 0, len(base)+len(app1))
	out = append(out, base[:2]...)
	out = append(out, app1...)
	out = append(out, base[2:]...)
	return out
}

func TestOrientationFromBytes_Tagged(t *testing.T) {
	data := jpegWithOrientation(t, 8, 4, 6)
	if o := OrientationFromBytes(data); o != OrientationRotate90 {
		t.Fatalf("expected orientation 6, got %d", o)
	}
}

func TestOrientationFromBytes_NoEXIF(t *testing.T) {
	// PNG carries no EXIF container; must silently resolve to none
	var buf bytes.Buffer
	if err := png.Encode(&buf, newRGBA(4, 3)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if o := OrientationFromBytes(buf.Bytes()); o != OrientationNone {
		t.Fatalf("expected none, got %d", o)
	}
}

func TestOrientationFromBytes_CorruptEXIF(t *testing.T) {
	// a truncated APP1 marker must behave exactly like an absent one
	data := jpegWithOrientation(t, 8, 4, 6)
	corrupt := append([]byte{}, data[:12]...)
	if o := OrientationFromBytes(corrupt); o != OrientationNone {
		t.Fatalf("expected none for corrupt EXIF, got %d", o)
	}
}

func TestOrientationFromBytes_OutOfRangeValue(t *testing.T) {
	data := jpegWithOrientation(t, 8, 4, 9)
	if o := OrientationFromBytes(data); o != OrientationNone {
		t.Fatalf("expected none for out-of-range tag, got %d", o)
	}
}

func TestResolveOrientation_MetadataWins(t *testing.T) {
	// conflicting sources: the metadata tag is authoritative
	if o := ResolveOrientation(OrientationRotate90, OrientationRotate180); o != OrientationRotate90 {
		t.Fatalf("expected metadata tag to win, got %d", o)
	}
}

func TestResolveOrientation_DecoderFallback(t *testing.T) {
	if o := ResolveOrientation(OrientationNone, OrientationFlipH); o != OrientationFlipH {
		t.Fatalf("expected decoder hint, got %d", o)
	}
	if o := ResolveOrientation(OrientationNone, OrientationNone); o != OrientationNone {
		t.Fatalf("expected none, got %d", o)
	}
}

func TestOrientationApply_Bounds(t *testing.T) {
	src := newRGBA(3, 2)

	for _, o := range []Orientation{OrientationNone, OrientationUpright, OrientationFlipH, OrientationRotate180, OrientationFlipV} {
		out := o.Apply(src)
		if out.Bounds().Dx() != 3 || out.Bounds().Dy() != 2 {
			t.Fatalf("orientation %d should preserve bounds, got %dx%d", o, out.Bounds().Dx(), out.Bounds().Dy())
		}
	}
	for _, o := range []Orientation{OrientationTranspose, OrientationRotate90, OrientationTransverse, OrientationRotate270} {
		out := o.Apply(src)
		if out.Bounds().Dx() != 2 || out.Bounds().Dy() != 3 {
			t.Fatalf("orientation %d should swap bounds, got %dx%d", o, out.Bounds().Dx(), out.Bounds().Dy())
		}
	}
}
