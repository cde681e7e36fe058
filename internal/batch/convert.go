// Package batch converts whole directory trees of images to WebP.
package batch

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MaloLebrin/cv-normalizer/internal/pipeline"
)

// DefaultWorkers is the number of concurrent conversions when the caller
// supplies none.
const DefaultWorkers = 4

// Stats aggregates the outcome of a recursive conversion run.
type Stats struct {
	Converted     int
	Skipped       int
	Errors        int
	ErrorMessages []string
}

// imageExts are the extensions the converter attempts to decode. Everything
// else is skipped without opening the file.
var imageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"tif":  true,
	"tiff": true,
	"avif": true,
}

// ConvertTreeToWebP walks root recursively and converts every image file to
// a sibling .webp file at the default WebP quality. Originals are retained.
// Skipped: files without an image extension, files already in WebP, and
// files whose .webp sibling already exists. A single file's failure is
// recorded and the walk continues; only an invalid root fails the call.
//
// Files are independent, so conversions run on a bounded pool of workers
// with no ordering between them. Stats updates are the only shared state.
func ConvertTreeToWebP(root string, workers int) (*Stats, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: directory does not exist: %s", pipeline.ErrInvalidInput, root)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%w: path is not a directory: %s", pipeline.ErrInvalidInput, root)
	}
	if workers < 1 {
		workers = DefaultWorkers
	}

	stats := &Stats{}
	var mu sync.Mutex

	paths := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range paths {
				convertOne(p, stats, &mu)
			}
		}()
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			mu.Lock()
			stats.Errors++
			stats.ErrorMessages = append(stats.ErrorMessages, fmt.Sprintf("failed to visit '%s': %v", path, err))
			mu.Unlock()
			return nil
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if ext == "" || ext == "webp" || !imageExts[ext] {
			mu.Lock()
			stats.Skipped++
			mu.Unlock()
			return nil
		}

		paths <- path
		return nil
	})
	close(paths)
	wg.Wait()

	if walkErr != nil {
		return stats, fmt.Errorf("%w: walk %s: %v", pipeline.ErrIoFailure, root, walkErr)
	}
	return stats, nil
}

func convertOne(path string, stats *Stats, mu *sync.Mutex) {
	target := strings.TrimSuffix(path, filepath.Ext(path)) + ".webp"
	if _, err := os.Stat(target); err == nil {
		mu.Lock()
		stats.Skipped++
		mu.Unlock()
		return
	}

	fail := func(msg string) {
		mu.Lock()
		stats.Errors++
		stats.ErrorMessages = append(stats.ErrorMessages, msg)
		mu.Unlock()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fail(fmt.Sprintf("failed to open image '%s': %v", path, err))
		return
	}

	img, _, err := pipeline.DecodeUpright(data)
	if err != nil {
		fail(fmt.Sprintf("failed to decode image '%s': %v", path, err))
		return
	}

	var buf bytes.Buffer
	if err := pipeline.Encode(img, &buf, pipeline.CodecWebP, pipeline.DefaultQuality); err != nil {
		fail(fmt.Sprintf("failed to encode WebP for '%s': %v", path, err))
		return
	}

	if err := atomicWrite(target, buf.Bytes()); err != nil {
		fail(fmt.Sprintf("failed to write WebP file '%s': %v", target, err))
		return
	}

	mu.Lock()
	stats.Converted++
	mu.Unlock()
}

// atomicWrite writes data to path via a temp file in the same directory so a
// crashed conversion never leaves a truncated .webp behind.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		tmp.Close()
		os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename temp to final: %w", err)
	}
	return nil
}
