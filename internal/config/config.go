// Package config loads mammocat's YAML configuration file, the same
// gopkg.in/yaml.v3 shape internal/config packages use across the DICOM
// tooling this repo is patterned on.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/medcognetics/mammocat/pkg/mammogram"
)

// contextKeyType is a private type so mammocat's config value in a
// context.Context can't collide with another package's key.
type contextKeyType struct{}

// ContextKey is the key main.go stores the loaded *Config under, and the
// key CLI subcommands read it back with.
var ContextKey = contextKeyType{}

// Config is mammocat's top-level configuration: the selector's default
// policy plus logging settings.
type Config struct {
	Selector SelectorConfig `yaml:"selector"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SelectorConfig mirrors mammogram.PreferenceOrder and mammogram.FilterConfig
// in a YAML-friendly shape.
type SelectorConfig struct {
	PreferenceOrder         string `yaml:"preference_order"`
	ExcludeSpotCompression  bool   `yaml:"exclude_spot_compression"`
	ExcludeMagnified        bool   `yaml:"exclude_magnified"`
	ExcludeImplantDisplaced bool   `yaml:"exclude_implant_displaced"`
	RequireStandardView     bool   `yaml:"require_standard_view"`
}

// LoggingConfig controls the CLI edge's logrus setup.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig reads and parses the YAML file at path, filling in any field
// left zero with DefaultConfig's value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// DefaultConfig returns mammocat's built-in configuration: the DEFAULT
// selector policy with the library's default FilterConfig, INFO-level text
// logging.
func DefaultConfig() *Config {
	df := mammogram.DefaultFilterConfig()
	return &Config{
		Selector: SelectorConfig{
			PreferenceOrder:         "default",
			ExcludeSpotCompression:  df.ExcludeSpotCompression,
			ExcludeMagnified:        df.ExcludeMagnified,
			ExcludeImplantDisplaced: df.ExcludeImplantDisplaced,
			RequireStandardView:     df.RequireStandardView,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func (c *Config) setDefaults() {
	if c.Selector.PreferenceOrder == "" {
		c.Selector.PreferenceOrder = "default"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// PreferenceOrder converts the configured policy name to a
// mammogram.PreferenceOrder. Unrecognized names fall back to the DEFAULT
// policy.
func (c *Config) PreferenceOrder() mammogram.PreferenceOrder {
	if c.Selector.PreferenceOrder == "tomo-first" {
		return mammogram.PreferenceTomoFirst
	}
	return mammogram.PreferenceDefault
}

// FilterConfig converts the configured selector section to a
// mammogram.FilterConfig.
func (c *Config) FilterConfig() mammogram.FilterConfig {
	return mammogram.FilterConfig{
		ExcludeSpotCompression:  c.Selector.ExcludeSpotCompression,
		ExcludeMagnified:        c.Selector.ExcludeMagnified,
		ExcludeImplantDisplaced: c.Selector.ExcludeImplantDisplaced,
		RequireStandardView:     c.Selector.RequireStandardView,
	}
}
