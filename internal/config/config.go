// SPDX-License-Identifier: MIT

// Package config holds the math3d CLI configuration: output formatting,
// batch concurrency and logging. Values come from DefaultConfig, then an
// optional YAML file, then environment overrides; command-line flags are
// applied last by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/math3d/matrix"
)

// Environment overrides.
const (
	EnvConcurrency = "MATH3D_CONCURRENCY"
	EnvLogLevel    = "MATH3D_LOG_LEVEL"
)

// ValidLogLevels lists the accepted log.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config is the top-level CLI configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Batch  BatchConfig  `yaml:"batch"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig controls matrix formatting.
type OutputConfig struct {
	Width     int `yaml:"width"`
	Precision int `yaml:"precision"`
}

// BatchConfig controls `math3d run`.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency"` // max jobs evaluated at once
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Width:     matrix.DefaultWidth,
			Precision: matrix.DefaultPrecision,
		},
		Batch: BatchConfig{
			Concurrency: runtime.GOMAXPROCS(0),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file over the defaults.
// A missing file yields the defaults. Unknown keys are rejected.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decodeKnownFields(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decodeKnownFields decodes YAML strictly; an empty document is not an error.
func decodeKnownFields(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvConcurrency); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvConcurrency, v, err)
		}
		c.Batch.Concurrency = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Output.Width < 1 || c.Output.Width > 64 {
		return fmt.Errorf("invalid output.width %d (valid: 1..64)", c.Output.Width)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("invalid output.precision %d (valid: 0..17)", c.Output.Precision)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("invalid batch.concurrency %d (must be >= 1)", c.Batch.Concurrency)
	}
	for _, l := range ValidLogLevels {
		if c.Log.Level == l {
			return nil
		}
	}

	return fmt.Errorf("invalid log.level: %s (valid: %v)", c.Log.Level, ValidLogLevels)
}

// FormatOptions returns the matrix formatting options for this config.
// Call Validate first; out-of-range values make the option constructors panic.
func (c *Config) FormatOptions() []matrix.FormatOption {
	return []matrix.FormatOption{
		matrix.WithWidth(c.Output.Width),
		matrix.WithPrecision(c.Output.Precision),
	}
}
