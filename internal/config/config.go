// Package config provides configuration for the chessrules command.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int `yaml:"verbosity"` // 0=nothing, 1=summary, 2=running commentary

	Output  *OutputConfig  `yaml:"output"`
	Perft   *PerftConfig   `yaml:"perft"`
	Storage *StorageConfig `yaml:"storage"`
	Play    *PlayConfig    `yaml:"play"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		Storage:    NewStorageConfig(),
		Play:       NewPlayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Play.Validate()
}
