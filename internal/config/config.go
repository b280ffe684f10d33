// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/weekly-stubs/internal/logging"
	"github.com/jonathan/weekly-stubs/internal/weeks"
)

// Built-in defaults, matching the first published weekly report.
const (
	DefaultStart     = "2025-11-27"
	DefaultEndYear   = 2026
	DefaultLogLevel  = "info"
	DefaultLogFormat = logging.FormatText
)

// Environment variables consulted by FromEnv.
const (
	EnvRepoRoot  = "WEEKLY_STUBS_REPO_ROOT"
	EnvStart     = "WEEKLY_STUBS_START"
	EnvEndYear   = "WEEKLY_STUBS_END_YEAR"
	EnvLogLevel  = "WEEKLY_STUBS_LOG_LEVEL"
	EnvLogFormat = "WEEKLY_STUBS_LOG_FORMAT"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	RepoRoot  string `json:"repo_root,omitempty"`  // Site repository root; auto-detected when empty
	Start     string `json:"start,omitempty"`      // First week start date (YYYY-MM-DD)
	EndYear   int    `json:"end_year,omitempty"`   // Generate through December 31 of this year
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // text or json
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Start:     DefaultStart,
		EndYear:   DefaultEndYear,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from WEEKLY_STUBS_* environment variables.
// Unset variables leave fields empty.
func FromEnv() (Config, error) {
	cfg := Config{
		RepoRoot:  os.Getenv(EnvRepoRoot),
		Start:     os.Getenv(EnvStart),
		LogLevel:  os.Getenv(EnvLogLevel),
		LogFormat: os.Getenv(EnvLogFormat),
	}

	if v := os.Getenv(EnvEndYear); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s must be an integer: %w", EnvEndYear, err)
		}
		if year <= 0 {
			return Config{}, fmt.Errorf("config error: %s must be between 1 and 9999, got %d", EnvEndYear, year)
		}
		cfg.EndYear = year
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Start != "" {
		if _, err := weeks.ParseDate(c.Start); err != nil {
			return fmt.Errorf("config error: 'start': %w", err)
		}
	}

	// Zero is the unset value and is filled in by MergeWithDefaults.
	if c.EndYear < 0 || c.EndYear > 9999 {
		return fmt.Errorf("config error: 'end_year' must be between 1 and 9999, got %d", c.EndYear)
	}

	if c.LogLevel != "" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config error: 'log_level': %w", err)
		}
	}

	switch c.LogFormat {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("config error: 'log_format' must be %q or %q", logging.FormatText, logging.FormatJSON)
	}

	if c.RepoRoot != "" {
		info, err := os.Stat(c.RepoRoot)
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: repo root is not a directory: %s", c.RepoRoot)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file, environment and built-in values beneath CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.RepoRoot == "" {
		result.RepoRoot = defaults.RepoRoot
	}
	if result.Start == "" {
		result.Start = defaults.Start
	}
	if result.EndYear == 0 {
		result.EndYear = defaults.EndYear
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	return result
}
