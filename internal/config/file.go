package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// LoadFile reads a YAML configuration file over the defaults. Settings the
// file leaves out keep their default values.
func LoadFile(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("'%s': %v: %w", filename, err, errors.ErrInvalidConfig)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("'%s': %w", filename, err)
	}
	return cfg, nil
}

// fillDefaults restores sections a file set to null.
func (c *Config) fillDefaults() {
	if c.Output == nil {
		c.Output = NewOutputConfig()
	}
	if c.Perft == nil {
		c.Perft = NewPerftConfig()
	}
	if c.Storage == nil {
		c.Storage = NewStorageConfig()
	}
	if c.Play == nil {
		c.Play = NewPlayConfig()
	}
}
