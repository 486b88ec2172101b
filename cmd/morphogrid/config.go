package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults loadable from a YAML file. Command-line
// flags override anything set here.
type Config struct {
	// Preset is the chamfer weight preset label used by distance mode.
	Preset string `yaml:"preset"`

	// Connectivity is the neighbor rule: 4 or 8 for 2D inputs.
	Connectivity int `yaml:"connectivity"`

	// Strategy selects the marker-controlled flooding mechanics:
	// "priority-queue" or "sorted-list".
	Strategy string `yaml:"strategy"`

	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Preset:       "Borgefors (3,4)",
		Connectivity: 4,
		Strategy:     "priority-queue",
		Verbose:      false,
	}
}

// LoadConfig loads configuration from a YAML file. A missing file is not
// an error: the defaults are returned unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}
