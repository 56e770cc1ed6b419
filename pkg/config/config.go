// Package config holds converter options loadable from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls code generation.
type Config struct {
	// IndentWidth is the number of spaces per indentation level in
	// generated Swift.
	IndentWidth int `yaml:"indent_width"`

	// TypeMap adds or overrides Objective-C to Swift type mappings.
	TypeMap map[string]string `yaml:"type_map"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		IndentWidth: 4,
		TypeMap:     map[string]string{},
	}
}

// Load reads a YAML configuration file. Missing fields keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.IndentWidth <= 0 {
		cfg.IndentWidth = 4
	}
	if cfg.TypeMap == nil {
		cfg.TypeMap = map[string]string{}
	}
	return cfg, nil
}
