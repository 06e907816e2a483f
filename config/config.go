// Package config provides configuration loading and management for exast.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/exast/extract"
)

// Config represents the complete exast configuration
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ExtractionConfig configures the extractor behavior
type ExtractionConfig struct {
	// IncludeLocations attaches source locations to extracted records
	IncludeLocations bool `yaml:"include_locations"`
	// IncludePatterns extracts full pattern records inside clause heads
	IncludePatterns bool `yaml:"include_patterns"`
	// MaxDepth bounds recursive traversal (default: 100)
	MaxDepth int `yaml:"max_depth"`
}

// LoggingConfig configures structured logging
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			IncludeLocations: true,
			IncludePatterns:  false,
			MaxDepth:         extract.DefaultMaxDepth,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Extraction.MaxDepth <= 0 {
		return fmt.Errorf("extraction.max_depth must be positive")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

// Options converts the extraction settings into extract.Options
func (c *Config) Options(logger *slog.Logger) extract.Options {
	return extract.Options{
		IncludeLocations: c.Extraction.IncludeLocations,
		IncludePatterns:  c.Extraction.IncludePatterns,
		MaxDepth:         c.Extraction.MaxDepth,
		Logger:           logger,
	}
}

// LogLevel returns the configured level as a slog.Level
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Extraction.MaxDepth != 0 {
		c.Extraction.MaxDepth = other.Extraction.MaxDepth
	}
	if other.Extraction.IncludePatterns {
		c.Extraction.IncludePatterns = true
	}
	if !other.Extraction.IncludeLocations {
		c.Extraction.IncludeLocations = false
	}

	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
}
