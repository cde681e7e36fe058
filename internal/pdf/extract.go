package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	ledpdf "github.com/ledongthuc/pdf"
)

// ErrExtractionFailed marks a PDF whose text content could not be read.
var ErrExtractionFailed = errors.New("failed to extract text from pdf")

// ExtractText returns the textual content of a PDF as a single string, with
// page breaks as newlines. Failures, including parser panics on malformed
// input, wrap ErrExtractionFailed.
func ExtractText(data []byte) (text string, err error) {
	// The underlying parser panics on some malformed files rather than
	// returning an error; surface those as ErrExtractionFailed too.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrExtractionFailed, r)
		}
	}()

	r, err := ledpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		s, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrExtractionFailed, i, err)
		}
		if i > 1 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}
