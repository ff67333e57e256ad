// Package config resolves mapbuilder settings from the environment.
//
// Values come from, in increasing priority: built-in defaults, a .env file
// in the working directory, and process environment variables. Command-line
// flags are applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ironsheep/mapbuilder/internal/mapdata"
	"github.com/ironsheep/mapbuilder/internal/palette"
	"github.com/ironsheep/mapbuilder/internal/raster"
)

// Environment variable names.
const (
	EnvLogLevel  = "MAPBUILDER_LOG_LEVEL"
	EnvBlockSize = "MAPBUILDER_BLOCK_SIZE"
	EnvPalette   = "MAPBUILDER_PALETTE"
	EnvWorkers   = "MAPBUILDER_WORKERS"
	EnvCacheSize = "MAPBUILDER_CACHE_SIZE"
)

// Config holds the resolved settings shared by the CLI and the tool server.
type Config struct {
	// LogLevel is "info" or "debug".
	LogLevel string
	// BlockSize is the world size of one grid cell.
	BlockSize int
	// PalettePath points at a YAML palette; empty selects the default palette.
	PalettePath string
	// Workers is the number of row classifiers run concurrently.
	Workers int
	// CacheSize is the number of decoded grids the tool server keeps.
	CacheSize int
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// Palette loads the configured palette.
func (c *Config) Palette() (*palette.Palette, error) {
	if c.PalettePath == "" {
		return palette.Default(), nil
	}
	return palette.LoadFile(c.PalettePath)
}

// Options returns the scan options implied by the configuration.
func (c *Config) Options() mapdata.Options {
	return mapdata.Options{BlockSize: c.BlockSize, Workers: c.Workers}
}

// Load reads an optional .env file and the MAPBUILDER_* variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the MAPBUILDER_* variables without touching .env files.
func FromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel:    firstNonEmpty(strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))), "info"),
		PalettePath: strings.TrimSpace(os.Getenv(EnvPalette)),
	}

	var err error
	if cfg.BlockSize, err = positiveInt(EnvBlockSize, mapdata.DefaultBlockSize); err != nil {
		return nil, err
	}
	if cfg.Workers, err = positiveInt(EnvWorkers, 1); err != nil {
		return nil, err
	}
	if cfg.CacheSize, err = positiveInt(EnvCacheSize, raster.DefaultCacheSize); err != nil {
		return nil, err
	}
	return cfg, nil
}

func positiveInt(name string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, raw)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
