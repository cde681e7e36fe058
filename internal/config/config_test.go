package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	if cfg.MaxDimension != 2000 {
		t.Fatalf("expected default max dimension 2000, got %d", cfg.MaxDimension)
	}
	if cfg.JPEGQuality != 80 {
		t.Fatalf("expected default quality 80, got %d", cfg.JPEGQuality)
	}
	if cfg.Workers != 4 {
		t.Fatalf("expected default workers 4, got %d", cfg.Workers)
	}
	if cfg.Ghostscript != "gs" {
		t.Fatalf("expected default gs binary, got %q", cfg.Ghostscript)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CVNORM_MAX_DIMENSION", "1500")
	t.Setenv("CVNORM_JPEG_QUALITY", "65")
	t.Setenv("CVNORM_WORKERS", "8")
	t.Setenv("CVNORM_GS_BIN", "/opt/gs/bin/gs")

	cfg := Load()
	if cfg.MaxDimension != 1500 || cfg.JPEGQuality != 65 || cfg.Workers != 8 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Ghostscript != "/opt/gs/bin/gs" {
		t.Fatalf("expected gs override, got %q", cfg.Ghostscript)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("CVNORM_WORKERS", "many")
	if cfg := Load(); cfg.Workers != 4 {
		t.Fatalf("expected fallback to default on bad int, got %d", cfg.Workers)
	}
}
