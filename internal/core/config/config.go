// Package config handles configuration loading and validation for stockroom.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/stockroom/internal/stock"
)

// Color output modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the application configuration.
type Config struct {
	// Manifest is the default inventory file used when --manifest is not
	// given on the command line.
	Manifest string `yaml:"manifest"`
	// Color controls report styling: auto, always, or never.
	Color string `yaml:"color"`
	// Categories binds extra item names onto the built-in category kinds
	// (generic, improving, event, legendary). Built-in bindings cannot be
	// removed, but rebinding a built-in name is allowed.
	Categories map[string][]string `yaml:"categories"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Manifest:   "stockroom.yaml",
		Color:      ColorAuto,
		Categories: map[string][]string{},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Manifest == "" {
		c.Manifest = defaults.Manifest
	}
	if c.Color == "" {
		c.Color = defaults.Color
	}
	if c.Categories == nil {
		c.Categories = map[string][]string{}
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never; got %q", c.Color)
	}

	bound := map[string]string{}
	for kind, names := range c.Categories {
		if _, ok := stock.StrategyForKind(stock.Kind(kind)); !ok {
			return fmt.Errorf("categories: unknown kind %q", kind)
		}
		for _, name := range names {
			if name == "" {
				return fmt.Errorf("categories: %s: item name cannot be empty", kind)
			}
			if prev, dup := bound[name]; dup {
				return fmt.Errorf("categories: %q bound to both %s and %s", name, prev, kind)
			}
			bound[name] = kind
		}
	}

	return nil
}

// Apply registers the configured category bindings onto r. Kinds that
// fail to resolve are skipped; Validate reports them as errors.
func (c *Config) Apply(r *stock.Registry) {
	for kind, names := range c.Categories {
		s, ok := stock.StrategyForKind(stock.Kind(kind))
		if !ok {
			continue
		}
		for _, name := range names {
			r.Register(name, s)
		}
	}
}
