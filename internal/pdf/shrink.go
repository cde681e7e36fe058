package pdf

import (
	"os"
	"os/exec"
)

// DefaultGhostscript is the binary consulted when the caller configures none.
const DefaultGhostscript = "gs"

// ShrinkWithGhostscript tries to recompress a PDF through Ghostscript.
// It returns (smaller bytes, true) only when every step succeeds and the
// result is strictly smaller than the input; in every other case, including
// Ghostscript not being installed, it declines with (nil, false). Callers
// fall back to the original bytes — this collaborator is never on the
// critical path and never produces an error.
func ShrinkWithGhostscript(input []byte, gsBin string) ([]byte, bool) {
	if len(input) == 0 {
		return nil, false
	}
	if gsBin == "" {
		gsBin = DefaultGhostscript
	}
	if _, err := exec.LookPath(gsBin); err != nil {
		return nil, false
	}

	in, err := os.CreateTemp("", "cvnorm-gs-in-*.pdf")
	if err != nil {
		return nil, false
	}
	defer func() {
		in.Close()
		os.Remove(in.Name())
	}()
	if _, err := in.Write(input); err != nil {
		return nil, false
	}
	if err := in.Close(); err != nil {
		return nil, false
	}

	out, err := os.CreateTemp("", "cvnorm-gs-out-*.pdf")
	if err != nil {
		return nil, false
	}
	outPath := out.Name()
	out.Close()
	defer os.Remove(outPath)

	// /screen is an aggressive but reasonable preset for scanned documents.
	cmd := exec.Command(gsBin,
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=/screen",
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile="+outPath,
		in.Name(),
	)
	if err := cmd.Run(); err != nil {
		return nil, false
	}

	optimized, err := os.ReadFile(outPath)
	if err != nil {
		return nil, false
	}
	if len(optimized) == 0 || len(optimized) >= len(input) {
		return nil, false
	}
	return optimized, true
}
