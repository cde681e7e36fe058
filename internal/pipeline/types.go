package pipeline

import "errors"

var (
	// ErrDecodeFailed marks an unreadable, corrupt or unsupported source image.
	ErrDecodeFailed = errors.New("failed to decode image")
	// ErrEncodeFailed marks a re-encoding failure.
	ErrEncodeFailed = errors.New("failed to encode image")
	// ErrInvalidInput marks malformed caller input: bad base64, missing path,
	// path that is not a directory.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIoFailure marks a filesystem read/write failure during file-based
	// operations.
	ErrIoFailure = errors.New("i/o failure")
)

// Orientation is one of the eight standard EXIF display transforms, or
// OrientationNone when no hint exists. Values 1-8 match the EXIF tag.
type Orientation int

const (
	OrientationNone       Orientation = 0
	OrientationUpright    Orientation = 1
	OrientationFlipH      Orientation = 2
	OrientationRotate180  Orientation = 3
	OrientationFlipV      Orientation = 4
	OrientationTranspose  Orientation = 5
	OrientationRotate90   Orientation = 6
	OrientationTransverse Orientation = 7
	OrientationRotate270  Orientation = 8
)
