// Package config loads the optional YAML service configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk service configuration. Timeouts are plain integer
// seconds in YAML to keep hand-edited files unambiguous.
type Config struct {
	Listen                string `yaml:"listen"`
	ReadTimeoutSecs       int    `yaml:"read_timeout_secs"`
	ReadHeaderTimeoutSecs int    `yaml:"read_header_timeout_secs"`
	WriteTimeoutSecs      int    `yaml:"write_timeout_secs"`
	IdleTimeoutSecs       int    `yaml:"idle_timeout_secs"`
	ShutdownTimeoutSecs   int    `yaml:"shutdown_timeout_secs"`

	// TickIntervalMS overrides the one-second tick cadence. Only integration
	// tests should set this; leave it at zero in production files.
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen:                "127.0.0.1:5000",
		ReadTimeoutSecs:       5,
		ReadHeaderTimeoutSecs: 2,
		WriteTimeoutSecs:      10,
		IdleTimeoutSecs:       60,
		ShutdownTimeoutSecs:   5,
	}
}

// Load reads the YAML file at path, filling unset fields from Default.
// An empty path yields Default without touching the filesystem.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// TickInterval converts TickIntervalMS to a duration; zero means the
// engine's one-second default.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}
