package config

import (
	"os"
	"strconv"
)

// Config carries process-wide defaults for the CLI. Library callers pass
// explicit values instead.
type Config struct {
	MaxDimension int    // long-side cap for PDF normalization
	JPEGQuality  int    // quality of the embedded JPEG
	Workers      int    // concurrent conversions in batch mode
	Ghostscript  string // gs binary tried for post-hoc PDF shrinking
}

func Load() *Config {
	return &Config{
		MaxDimension: getEnvInt("CVNORM_MAX_DIMENSION", 2000),
		JPEGQuality:  getEnvInt("CVNORM_JPEG_QUALITY", 80),
		Workers:      getEnvInt("CVNORM_WORKERS", 4),
		Ghostscript:  getEnv("CVNORM_GS_BIN", "gs"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
