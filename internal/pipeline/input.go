package pipeline

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
)

// DecodeBase64 decodes standard base64 text into raw bytes. Malformed input
// wraps ErrInvalidInput.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode base64: %v", ErrInvalidInput, err)
	}
	return data, nil
}

// EncodeBase64 encodes raw bytes as standard base64 text.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// readInputFile reads path, mapping a missing file to ErrInvalidInput and
// any other read failure to ErrIoFailure.
func readInputFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no such file: %s", ErrInvalidInput, path)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrIoFailure, path, err)
	}
	return data, nil
}

// ToWebP re-encodes any supported image as lossy WebP at the default
// quality, applying EXIF orientation first.
func ToWebP(data []byte) ([]byte, error) {
	img, _, err := DecodeUpright(data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := Encode(img, &buf, CodecWebP, DefaultQuality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToWebPFile converts the image file at path to WebP bytes.
func ToWebPFile(path string) ([]byte, error) {
	data, err := readInputFile(path)
	if err != nil {
		return nil, err
	}
	return ToWebP(data)
}

// ToWebPBase64 converts a base64-encoded image to WebP bytes.
func ToWebPBase64(s string) ([]byte, error) {
	data, err := DecodeBase64(s)
	if err != nil {
		return nil, err
	}
	return ToWebP(data)
}

// OptimizeFile runs Optimize on the image file at path.
func OptimizeFile(path string, opts Options) ([]byte, error) {
	data, err := readInputFile(path)
	if err != nil {
		return nil, err
	}
	return Optimize(data, opts)
}

// OptimizeBase64 runs Optimize on a base64-encoded image.
func OptimizeBase64(s string, opts Options) ([]byte, error) {
	data, err := DecodeBase64(s)
	if err != nil {
		return nil, err
	}
	return Optimize(data, opts)
}
