package config

import (
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the depth accepted from configuration.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-tree node counting.
type PerftConfig struct {
	// Depth is the number of plies counted
	Depth int `yaml:"depth"`

	// Workers is the number of goroutines sharing the root moves
	Workers int `yaml:"workers"`
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   3,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks the depth and worker count.
func (c *PerftConfig) Validate() error {
	if c.Depth < 1 || c.Depth > MaxPerftDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d not in 1..%d", c.Depth, MaxPerftDepth)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft workers %d", c.Workers)
	}
	return nil
}
