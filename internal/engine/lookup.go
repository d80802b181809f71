package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// FindMove returns the current player's move from one square to another,
// or NoMove if there is none. Castles are found by the king's squares.
// A promoting move is returned with the default promotion.
func FindMove(board *Board, from, to chess.Coordinate) Move {
	for _, move := range board.current.legalMoves {
		if move.From() == from && move.to == to {
			return move
		}
	}
	return NoMove
}

// ParseMove resolves a from-square and to-square pair such as "e2e4",
// optionally followed by a promotion letter as in "e7e8n", against the
// current player's moves. Castles are named by the king's squares ("e1g1").
// NoMove is returned when the squares name no move; malformed text is an error.
func ParseMove(board *Board, text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return NoMove, badMoveText(text)
	}
	from, err := chess.ParseCoordinate(text[0:2])
	if err != nil {
		return NoMove, badMoveText(text)
	}
	to, err := chess.ParseCoordinate(text[2:4])
	if err != nil {
		return NoMove, badMoveText(text)
	}

	move := FindMove(board, from, to)
	if len(text) == 5 && !move.IsNull() {
		kind := chess.KindFromLetter(text[4])
		if move, err = move.WithPromotion(kind); err != nil {
			return NoMove, err
		}
	}
	return move, nil
}

func badMoveText(text string) error {
	return errors.Wrapf(errors.ErrIllegalMove, "cannot parse move %q", text)
}
