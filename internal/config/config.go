// Package config loads the optional YAML configuration file for chain.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTitle is shown above each block when no title is given.
const DefaultTitle = "[NO TITLE]"

// DefaultLockTimeout bounds the wait for the shared lock on the input file.
const DefaultLockTimeout = 5 * time.Second

// Config holds settings that apply when the command line leaves them unset.
type Config struct {
	Title       string        `yaml:"title"`
	Format      string        `yaml:"format"`
	LockTimeout time.Duration `yaml:"lock_timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Title:       DefaultTitle,
		Format:      "pretty",
		LockTimeout: DefaultLockTimeout,
	}
}

// Load reads the YAML file at path over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Format {
	case "pretty", "toon", "json":
	default:
		return fmt.Errorf("format must be one of pretty, toon, json; got %q", c.Format)
	}
	if c.LockTimeout <= 0 {
		return fmt.Errorf("lock_timeout must be positive; got %s", c.LockTimeout)
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	return nil
}
