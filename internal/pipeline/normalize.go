package pipeline

import (
	"bytes"
	"strings"

	"github.com/MaloLebrin/cv-normalizer/internal/pdf"
)

// NormalizeMaxDimension is the long-side cap applied before embedding an
// image into a PDF, chosen to bound output document size.
const NormalizeMaxDimension = 2000

// NormalizeJPEGQuality is the fixed quality used for the embedded JPEG.
const NormalizeJPEGQuality = 80

// IsSupportedImageMime reports whether a declared content type is one the
// normalization pipeline converts. Comparison is case-insensitive.
func IsSupportedImageMime(mime string) bool {
	switch strings.ToLower(mime) {
	case "image/png", "image/jpeg", "image/jpg", "image/pjpeg":
		return true
	}
	return false
}

// IsPDFMime reports whether a declared content type is already a PDF.
func IsPDFMime(mime string) bool {
	switch strings.ToLower(mime) {
	case "application/pdf", "application/x-pdf":
		return true
	}
	return false
}

// NormalizeToPDF converts a supported image into a single-page PDF using
// the standard long-side cap and quality. Inputs with any other declared
// content type (PDFs included) pass through unchanged.
func NormalizeToPDF(data []byte, contentType string) ([]byte, error) {
	return NormalizeToPDFWith(data, contentType, NormalizeMaxDimension, NormalizeJPEGQuality, pdf.DefaultGhostscript)
}

// NormalizeToPDFWith is NormalizeToPDF with explicit bounds: a long-side cap,
// a JPEG quality factor, and the Ghostscript binary to try for post-hoc
// shrinking. The pipeline is decode → orient → resize → JPEG → assemble;
// any stage failure aborts with a typed error and no partial output. The
// Ghostscript step is best-effort: when it declines, the unshrunk container
// is returned.
func NormalizeToPDFWith(data []byte, contentType string, maxDimension, quality int, gsBin string) ([]byte, error) {
	if !IsSupportedImageMime(contentType) {
		return data, nil
	}

	img, _, err := DecodeUpright(data)
	if err != nil {
		return nil, err
	}

	img = Resize(img, maxDimension)

	var buf bytes.Buffer
	if err := Encode(img, &buf, CodecJPEG, quality); err != nil {
		return nil, err
	}

	b := img.Bounds()
	doc := pdf.BuildSinglePage(buf.Bytes(), b.Dx(), b.Dy())

	if shrunk, ok := pdf.ShrinkWithGhostscript(doc, gsBin); ok {
		return shrunk, nil
	}
	return doc, nil
}
