package famdash

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig. All are optional.
const (
	EnvOutputDir    = "FAMDASH_OUTPUT_DIR"
	EnvLocation     = "FAMDASH_LOCATION"
	EnvDitherType   = "FAMDASH_DITHER_TYPE"
	EnvDitherKernel = "FAMDASH_DITHER_KERNEL"
)

// Config holds the process-level settings for dashboard generation.
type Config struct {
	OutputDir    string
	Location     string
	DitherType   DitherType
	DitherKernel DitherKernel
}

// LoadConfig reads configuration from a .env file (if present) and the
// environment. Every setting has a default, so the only failure mode is an
// unparseable dither value.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{
		OutputDir:    "output",
		Location:     "Home",
		DitherType:   DitherNone,
		DitherKernel: KernelFloydSteinberg,
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvLocation); v != "" {
		cfg.Location = v
	}
	if v := os.Getenv(EnvDitherType); v != "" {
		t, err := ParseDitherType(v)
		if err != nil {
			return nil, fmt.Errorf("famdash: %s: %w", EnvDitherType, err)
		}
		cfg.DitherType = t
	}
	if v := os.Getenv(EnvDitherKernel); v != "" {
		k, err := ParseDitherKernel(v)
		if err != nil {
			return nil, fmt.Errorf("famdash: %s: %w", EnvDitherKernel, err)
		}
		cfg.DitherKernel = k
	}
	return cfg, nil
}
