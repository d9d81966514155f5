// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file Load looks for in the working directory.
const FileName = ".drills.yaml"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the complete drills configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Check   CheckConfig   `yaml:"check"`
}

// LoggingConfig selects the slog handler and level
type LoggingConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// CheckConfig controls the self-check command
type CheckConfig struct {
	CasesFile string `yaml:"cases_file"`
	Color     bool   `yaml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
		},
		Check: CheckConfig{
			Color: true,
		},
	}
}

// Load loads the configuration from .drills.yaml in the working directory.
// A missing file is not an error; the defaults are returned instead.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	configPath := filepath.Join(cwd, FileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from path. Fields the file leaves unset keep
// their default values.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv lets LOG_FORMAT override the configured log format. Call it before
// Validate so the override is checked too.
func (c *Config) ApplyEnv() {
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Logging.Format)
	}

	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}

	return nil
}

// SlogLevel returns the configured level, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
}
