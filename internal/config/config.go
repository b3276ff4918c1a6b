// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied when neither the config file nor flags set a value.
const (
	DefaultPort           = 8080
	DefaultOutputDir      = "out"
	DefaultCaptureTimeout = 30 * time.Second
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Export
	OutputDir         string `json:"output_dir,omitempty"`          // Directory exported documents are written to
	CaptureTimeoutSec int    `json:"capture_timeout_sec,omitempty"` // Browser capture timeout in seconds
	ChromePath        string `json:"chrome_path,omitempty"`         // Explicit Chrome/Chromium binary for capture

	// Defaults for rendering
	Template string `json:"template,omitempty"` // Default layout template id
	Theme    string `json:"theme,omitempty"`    // Default color theme id

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.CaptureTimeoutSec < 0 {
		return fmt.Errorf("config error: 'capture_timeout_sec' must be non-negative")
	}
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults, falling back to the package defaults where neither side sets a
// value.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.OutputDir == "" {
		result.OutputDir = DefaultOutputDir
	}

	if result.CaptureTimeoutSec == 0 {
		result.CaptureTimeoutSec = defaults.CaptureTimeoutSec
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// CaptureTimeout returns the browser capture timeout as a duration.
func (c *Config) CaptureTimeout() time.Duration {
	if c.CaptureTimeoutSec <= 0 {
		return DefaultCaptureTimeout
	}
	return time.Duration(c.CaptureTimeoutSec) * time.Second
}
