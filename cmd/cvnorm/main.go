// cvnorm normalizes documents: images to bounded single-page PDFs, images
// to optimized/re-encoded buffers, directory trees to WebP, and PDFs to
// plain text.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/MaloLebrin/cv-normalizer/internal/batch"
	"github.com/MaloLebrin/cv-normalizer/internal/config"
	"github.com/MaloLebrin/cv-normalizer/internal/pdf"
	"github.com/MaloLebrin/cv-normalizer/internal/pipeline"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()

	var err error
	switch os.Args[1] {
	case "normalize":
		err = runNormalize(cfg, os.Args[2:])
	case "optimize":
		err = runOptimize(os.Args[2:])
	case "convert":
		err = runConvert(cfg, os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("cvnorm: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cvnorm <command> [flags]

commands:
  normalize  -in FILE -out FILE        convert an image to a single-page PDF
  optimize   -in FILE -out FILE        resize/re-encode an image
  convert    -dir DIR                  convert a directory tree to WebP
  extract    -in FILE                  print the text content of a PDF`)
}

func runNormalize(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	in := fs.String("in", "", "input image file")
	out := fs.String("out", "", "output PDF file")
	fs.Parse(args)
	if *in == "" || *out == "" {
		return fmt.Errorf("normalize: -in and -out are required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	result, err := pipeline.NormalizeToPDFWith(data, pipeline.DetectFormat(data),
		cfg.MaxDimension, cfg.JPEGQuality, cfg.Ghostscript)
	if err != nil {
		return err
	}
	return os.WriteFile(*out, result, 0o644)
}

func runOptimize(args []string) error {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	in := fs.String("in", "", "input image file")
	out := fs.String("out", "", "output image file")
	maxWidth := fs.Int("max-width", 0, "maximum width in pixels (0 = unbounded)")
	maxHeight := fs.Int("max-height", 0, "maximum height in pixels (0 = unbounded)")
	quality := fs.Int("quality", pipeline.DefaultQuality, "quality 1-100 for lossy codecs")
	format := fs.String("format", "auto", "output format: jpeg|jpg|png|webp|avif|auto")
	fs.Parse(args)
	if *in == "" || *out == "" {
		return fmt.Errorf("optimize: -in and -out are required")
	}

	result, err := pipeline.OptimizeFile(*in, pipeline.Options{
		MaxWidth:  *maxWidth,
		MaxHeight: *maxHeight,
		Quality:   *quality,
		Format:    *format,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(*out, result, 0o644)
}

func runConvert(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	dir := fs.String("dir", "", "directory tree to convert")
	workers := fs.Int("workers", cfg.Workers, "concurrent conversions")
	fs.Parse(args)
	if *dir == "" {
		return fmt.Errorf("convert: -dir is required")
	}

	stats, err := batch.ConvertTreeToWebP(*dir, *workers)
	if err != nil {
		return err
	}
	log.Printf("converted=%d skipped=%d errors=%d", stats.Converted, stats.Skipped, stats.Errors)
	for _, msg := range stats.ErrorMessages {
		log.Printf("  %s", msg)
	}
	return nil
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	in := fs.String("in", "", "input PDF file")
	fs.Parse(args)
	if *in == "" {
		return fmt.Errorf("extract: -in is required")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	text, err := pdf.ExtractText(data)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}
