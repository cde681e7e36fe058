package pipeline

import (
	"image"
	"testing"
)

func newRGBA(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestTargetSize_Landscape(t *testing.T) {
	w, h := TargetSize(4000, 3000, 1920)
	if w != 1920 || h != 1440 {
		t.Fatalf("expected 1920x1440, got %dx%d", w, h)
	}
}

func TestTargetSize_Portrait(t *testing.T) {
	w, h := TargetSize(3000, 4000, 1920)
	if w != 1440 || h != 1920 {
		t.Fatalf("expected 1440x1920, got %dx%d", w, h)
	}
}

func TestTargetSize_NoUpscale(t *testing.T) {
	w, h := TargetSize(800, 600, 1920)
	if w != 800 || h != 600 {
		t.Fatalf("expected unchanged 800x600, got %dx%d", w, h)
	}
}

func TestTargetSize_ExactFit(t *testing.T) {
	w, h := TargetSize(1920, 1080, 1920)
	if w != 1920 || h != 1080 {
		t.Fatalf("expected unchanged 1920x1080, got %dx%d", w, h)
	}
}

func TestTargetSize_RoundsToNearest(t *testing.T) {
	// 3000 * (2000/4000) = 1500 exactly; 1001 * (100/2000) = 50.05 -> 50
	w, h := TargetSize(4000, 3000, 2000)
	if w != 2000 || h != 1500 {
		t.Fatalf("expected 2000x1500, got %dx%d", w, h)
	}
	w, h = TargetSize(2000, 1001, 100)
	if w != 100 || h != 50 {
		t.Fatalf("expected 100x50, got %dx%d", w, h)
	}
}

func TestTargetSize_MinimumDimensionFloor(t *testing.T) {
	// pathologically thin image must never round down to 0
	w, h := TargetSize(10000, 1, 100)
	if w != 100 || h != 1 {
		t.Fatalf("expected 100x1, got %dx%d", w, h)
	}
	w, h = TargetSize(1, 10000, 100)
	if w != 1 || h != 100 {
		t.Fatalf("expected 1x100, got %dx%d", w, h)
	}
}

func TestResize_NoUpscale(t *testing.T) {
	img := newRGBA(1000, 800)
	out := Resize(img, 1920)
	if out.Bounds().Dx() != 1000 || out.Bounds().Dy() != 800 {
		t.Fatalf("expected unchanged 1000x800, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestResize_LargeLandscape(t *testing.T) {
	img := newRGBA(4000, 3000)
	out := Resize(img, 1920)
	if out.Bounds().Dx() != 1920 || out.Bounds().Dy() != 1440 {
		t.Fatalf("expected 1920x1440, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestResize_LargePortrait(t *testing.T) {
	img := newRGBA(3000, 4000)
	out := Resize(img, 1920)
	if out.Bounds().Dx() != 1440 || out.Bounds().Dy() != 1920 {
		t.Fatalf("expected 1440x1920, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}
