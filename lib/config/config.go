// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the operator
// console.
//
// Configuration is loaded from a single YAML file specified by:
//   - TEC_CONSOLE_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. Flags override file
// values (currently only the backend URL via --backend).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "TEC_CONSOLE_CONFIG"

// Config is the console configuration.
type Config struct {
	// Backend configures the supervisory backend connection.
	Backend BackendConfig `yaml:"backend"`

	// Log configures the log pane and console logging.
	Log LogConfig `yaml:"log"`
}

// BackendConfig configures the supervisory backend connection.
type BackendConfig struct {
	// URL is the backend base address, e.g. "http://172.23.68.187:8000".
	URL string `yaml:"url"`
}

// LogConfig configures the log pane and console logging.
type LogConfig struct {
	// PollInterval is a Go duration string for periodic log refresh
	// ("10s", "1m"). Empty or "0" disables polling; the log is then
	// fetched once at startup and on manual refresh only.
	PollInterval string `yaml:"poll_interval"`

	// Level is the minimum slog level shown in the status bar:
	// debug, info, warn, error. Defaults to warn.
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is given:
// a local backend, no polling, warnings only.
func Default() Config {
	return Config{
		Backend: BackendConfig{URL: "http://127.0.0.1:8000"},
		Log:     LogConfig{Level: "warn"},
	}
}

// Load reads configuration from the path in flagPath, falling back to
// the TEC_CONSOLE_CONFIG environment variable, falling back to
// defaults when neither is set.
func Load(flagPath string) (Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and validates configuration from a specific file.
func LoadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	configuration := Default()
	if err := yaml.Unmarshal(data, &configuration); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := configuration.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return configuration, nil
}

// Validate checks field values. Called by LoadFromPath; call directly
// after programmatic construction.
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if _, err := c.Log.PollDuration(); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// PollDuration parses the poll interval. Zero means polling disabled.
func (c LogConfig) PollDuration() (time.Duration, error) {
	if c.PollInterval == "" || c.PollInterval == "0" {
		return 0, nil
	}
	interval, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return 0, fmt.Errorf("log.poll_interval: %w", err)
	}
	if interval < 0 {
		return 0, fmt.Errorf("log.poll_interval must not be negative")
	}
	return interval, nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	switch c.Level {
	case "", "warn":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level: unknown level %q", c.Level)
	}
}
