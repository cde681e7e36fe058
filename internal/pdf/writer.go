// Package pdf hand-assembles a minimal single-page PDF around an encoded
// image, and wraps the external collaborators that read PDFs back (text
// extraction, Ghostscript shrinking).
package pdf

import (
	"bytes"
	"fmt"
)

// BuildSinglePage assembles a minimal single-page PDF embedding jpegData as
// the sole page image. The page box reuses the image's pixel dimensions as
// page units. The JPEG bytes are embedded verbatim under /DCTDecode; nothing
// in the container is compressed.
//
// Object ids are fixed for the single-page case: 1 catalog, 2 pages, 3 page,
// 4 image XObject, 5 content stream. Cross-reference offsets are snapshots of
// the buffer length taken immediately before each object's leading marker,
// never estimates; the xref table is positional and a single stray byte makes
// the file unreadable by strict viewers.
func BuildSinglePage(jpegData []byte, width, height int) []byte {
	var buf bytes.Buffer
	offsets := make([]int, 0, 5)

	buf.WriteString("%PDF-1.4\n")

	// 1: catalog
	offsets = append(offsets, buf.Len())
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	// 2: page tree
	offsets = append(offsets, buf.Len())
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")

	// 3: page
	offsets = append(offsets, buf.Len())
	fmt.Fprintf(&buf,
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /XObject << /Im0 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		width, height)

	// 4: image XObject, stream bytes copied verbatim
	offsets = append(offsets, buf.Len())
	fmt.Fprintf(&buf,
		"4 0 obj\n<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode /Length %d >>\nstream\n",
		width, height, len(jpegData))
	buf.Write(jpegData)
	buf.WriteString("\nendstream\nendobj\n")

	// 5: content stream scaling the unit image square to the page box
	content := fmt.Sprintf("q\n%d 0 0 %d 0 0 cm\n/Im0 Do\nQ\n", width, height)
	offsets = append(offsets, buf.Len())
	fmt.Fprintf(&buf, "5 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
		len(content), content)

	xrefStart := buf.Len()
	buf.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefStart)

	return buf.Bytes()
}
