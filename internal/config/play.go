package config

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PlayConfig holds settings for playing moves.
type PlayConfig struct {
	// Promotion is the letter of the piece pawns promote to when a move
	// does not name one: q, r, b or n.
	Promotion string `yaml:"promotion"`
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{Promotion: "q"}
}

// PromotionKind returns the configured promotion kind, or NoKind if the
// letter is not a valid promotion.
func (c *PlayConfig) PromotionKind() chess.Kind {
	if len(c.Promotion) != 1 {
		return chess.NoKind
	}
	kind := chess.KindFromLetter(c.Promotion[0])
	if !kind.IsPromotionTarget() {
		return chess.NoKind
	}
	return kind
}

// Validate checks the promotion letter.
func (c *PlayConfig) Validate() error {
	if c.PromotionKind() == chess.NoKind {
		return errors.Wrapf(errors.ErrInvalidPromotion, "promotion %q", c.Promotion)
	}
	return nil
}
