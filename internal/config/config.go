// Package config loads optional TOML defaults for the CLI. Flags set on the
// command line always override config values.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sheetcheck/sheetcheck/internal/logger"
)

// DefaultPath is searched when no --config flag is given; a missing file at
// this path is not an error.
const DefaultPath = "sheetcheck.toml"

type Config struct {
	Compare CompareConfig `toml:"compare"`
	Inter   InterConfig   `toml:"inter"`
	Sort    SortConfig    `toml:"sort"`
}

type CompareConfig struct {
	// DecimalPlaces is the rounding precision for numeric comparison.
	DecimalPlaces int `toml:"decimal_places"`
}

type InterConfig struct {
	// ManualStart is the default first data row in the manual sheet.
	ManualStart int `toml:"manual_start"`
	// AutoStart is the default first data row in the auto sheet.
	AutoStart int `toml:"auto_start"`
}

type SortConfig struct {
	// GroupColumn is the default header of the column rows are grouped by.
	GroupColumn string `toml:"group_column"`
	// Priority lists group values placed first, in order.
	Priority []string `toml:"priority"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Compare: CompareConfig{DecimalPlaces: 5},
		Inter:   InterConfig{ManualStart: 8, AutoStart: 2},
		Sort: SortConfig{
			GroupColumn: "Broker",
			Priority:    []string{"DWM", "FEDEX", "DHLE", "POL", "UPS"},
		},
	}
}

// Load reads configuration from path. When path is empty, DefaultPath is
// tried and built-in defaults are returned if it does not exist; an
// explicitly given path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return Default(), nil
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	// Keep missing values at their defaults.
	if cfg.Compare.DecimalPlaces < 1 {
		cfg.Compare.DecimalPlaces = 5
	}
	if cfg.Inter.ManualStart < 1 {
		cfg.Inter.ManualStart = 8
	}
	if cfg.Inter.AutoStart < 1 {
		cfg.Inter.AutoStart = 2
	}
	if cfg.Sort.GroupColumn == "" {
		cfg.Sort.GroupColumn = "Broker"
	}

	logger.Info("loaded configuration", "path", path)
	return cfg, nil
}
