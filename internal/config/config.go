// Package config provides configuration management for the cleaner and generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the commands look for a config file when none is given.
const DefaultPath = "configs/userclean.yaml"

// Modes.
const (
	ModeClean = "clean"
	ModeStats = "stats"
)

// Output formats.
const (
	FormatJSON   = "json"
	FormatJSONL  = "jsonl"
	FormatSQLite = "sqlite"
)

// Report formats.
const (
	ReportText = "text"
	ReportJSON = "json"
)

// Configuration validation errors.
var (
	ErrInvalidMode      = errors.New("pipeline.mode must be 'clean' or 'stats'")
	ErrInvalidStrategy  = errors.New("pipeline.strategy must be 'chunked' or 'whole'")
	ErrInvalidChunkSize = errors.New("pipeline.chunk_size must be at least 1")
	ErrMissingInput     = errors.New("pipeline.input is required")
	ErrMissingOutput    = errors.New("output.path is required")
	ErrInvalidFormat    = errors.New("output.format must be one of: json, jsonl, sqlite")
	ErrInvalidTopN      = errors.New("report.top_n must be at least 1")
	ErrInvalidReport    = errors.New("report.format must be 'text' or 'json'")
	ErrInvalidCount     = errors.New("generator.count must be non-negative")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete cleaner configuration.
type Config struct {
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Output    OutputConfig    `yaml:"output"`
	Report    ReportConfig    `yaml:"report"`
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PipelineConfig controls how input is read and cleaned.
type PipelineConfig struct {
	Mode      string `yaml:"mode"`
	Strategy  string `yaml:"strategy"`
	Input     string `yaml:"input"`
	ChunkSize int    `yaml:"chunk_size"`
	AsyncIO   bool   `yaml:"async_io"`
}

// OutputConfig defines where cleaned records are written.
type OutputConfig struct {
	Path        string `yaml:"path"`
	Format      string `yaml:"format"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// ReportConfig defines the stats report.
type ReportConfig struct {
	TopN   int    `yaml:"top_n"`
	Format string `yaml:"format"`
}

// GeneratorConfig defines synthetic data generation.
type GeneratorConfig struct {
	Count int    `yaml:"count"`
	Seed  uint64 `yaml:"seed"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Timings bool   `yaml:"timings"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Mode:      ModeStats,
			Strategy:  "chunked",
			Input:     filepath.Join("data", "data.json"),
			ChunkSize: 2000,
		},
		Output: OutputConfig{
			Path:        filepath.Join("data", "cleaned.json"),
			PrettyPrint: true,
		},
		Report: ReportConfig{
			TopN:   10,
			Format: ReportText,
		},
		Generator: GeneratorConfig{
			Count: 10000,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Timings: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of Default().
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Pipeline.Mode {
	case ModeClean, ModeStats:
	default:
		return ErrInvalidMode
	}

	switch strings.ToLower(c.Pipeline.Strategy) {
	case "", "chunked", "whole":
	default:
		return ErrInvalidStrategy
	}

	if c.Pipeline.ChunkSize < 1 {
		return ErrInvalidChunkSize
	}

	if c.Pipeline.Input == "" {
		return ErrMissingInput
	}

	if c.Output.Path == "" {
		return ErrMissingOutput
	}

	switch c.Output.Format {
	case "", FormatJSON, FormatJSONL, FormatSQLite:
	default:
		return ErrInvalidFormat
	}

	if c.Report.TopN < 1 {
		return ErrInvalidTopN
	}

	switch c.Report.Format {
	case "", ReportText, ReportJSON:
	default:
		return ErrInvalidReport
	}

	if c.Generator.Count < 0 {
		return ErrInvalidCount
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// ResolveFormat returns the configured output format, or infers it from the
// output path extension when unset.
func (c *Config) ResolveFormat() string {
	if c.Output.Format != "" {
		return c.Output.Format
	}

	switch strings.ToLower(filepath.Ext(c.Output.Path)) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Mode: %s, Strategy: %s, ChunkSize: %d, AsyncIO: %t, Input: %s, Output: %s (%s)}",
		c.Pipeline.Mode,
		c.Pipeline.Strategy,
		c.Pipeline.ChunkSize,
		c.Pipeline.AsyncIO,
		c.Pipeline.Input,
		c.Output.Path,
		c.ResolveFormat(),
	)
}
