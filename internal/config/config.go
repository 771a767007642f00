package config

import (
	"os"
	"strconv"
)

type Config struct {
	Size      int    // block dimension; 0 means take it from the input matrix
	Strategy  string // direct, parallel, separable or fourier
	Workers   int    // goroutines for the parallel strategy; 0 means GOMAXPROCS
	Format    string // text or json
	Precision int    // digits after the decimal point in text output
	LogLevel  string
}

func Load() *Config {
	return &Config{
		Size:      envIntOr("DCT_SIZE", 0),
		Strategy:  envOr("DCT_STRATEGY", "direct"),
		Workers:   envIntOr("DCT_WORKERS", 0),
		Format:    envOr("DCT_FORMAT", "text"),
		Precision: envIntOr("DCT_PRECISION", 6),
		LogLevel:  envOr("LOG_LEVEL", "warn"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
