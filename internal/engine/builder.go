package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Builder accumulates the pieces and state of a position before it is
// frozen into a Board. A Builder can be built only once.
type Builder struct {
	pieces         map[chess.Coordinate]chess.Piece
	moveMaker      chess.Colour
	enPassantPawn  chess.Piece
	hasEnPassant   bool
	halfmoveClock  int
	fullmoveNumber int
	consumed       bool
}

// NewBuilder creates an empty builder with White to move.
func NewBuilder() *Builder {
	return &Builder{
		pieces:         make(map[chess.Coordinate]chess.Piece),
		moveMaker:      chess.White,
		fullmoveNumber: 1,
	}
}

// SetPiece records piece at its own position, replacing any piece already
// recorded there. Pieces with an invalid position are ignored and reported
// by Build.
func (b *Builder) SetPiece(piece chess.Piece) *Builder {
	b.pieces[piece.Position] = piece
	return b
}

// SetMoveMaker records which colour moves on the built board.
func (b *Builder) SetMoveMaker(colour chess.Colour) *Builder {
	b.moveMaker = colour
	return b
}

// SetEnPassantPawn records the pawn that has just advanced two squares.
func (b *Builder) SetEnPassantPawn(pawn chess.Piece) *Builder {
	b.enPassantPawn = pawn
	b.hasEnPassant = true
	return b
}

// SetClocks records the half-move clock and full-move number.
func (b *Builder) SetClocks(halfmove, fullmove int) *Builder {
	b.halfmoveClock = halfmove
	b.fullmoveNumber = fullmove
	return b
}

// Build materialises the board. It fails with ErrInvalidBoard when either
// colour does not have exactly one king, or a piece lies off the board, and
// with ErrBuilderConsumed when called a second time.
func (b *Builder) Build() (*Board, error) {
	if b.consumed {
		return nil, errors.ErrBuilderConsumed
	}
	b.consumed = true

	kings := map[chess.Colour]int{}
	for c, piece := range b.pieces {
		if !c.IsValid() {
			return nil, errors.Wrapf(errors.ErrInvalidBoard, "piece %s off the board", piece.Kind)
		}
		if piece.Kind == chess.King {
			kings[piece.Colour]++
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return nil, fmt.Errorf("%s has %d kings: %w", colour, kings[colour], errors.ErrInvalidBoard)
		}
	}

	if b.hasEnPassant {
		if err := b.checkEnPassant(); err != nil {
			return nil, err
		}
	}

	return newBoard(b), nil
}

// checkEnPassant verifies the recorded pawn is on the board, belongs to the
// side that just moved and sits on the row a double push lands on.
func (b *Builder) checkEnPassant() error {
	pawn := b.enPassantPawn
	onBoard, ok := b.pieces[pawn.Position]
	if !ok || onBoard != pawn || pawn.Kind != chess.Pawn {
		return errors.Wrapf(errors.ErrInvalidBoard, "en passant pawn %s not on board", pawn.Position)
	}
	if pawn.Colour == b.moveMaker {
		return errors.Wrapf(errors.ErrInvalidBoard, "en passant pawn %s belongs to the side to move", pawn.Position)
	}
	landing := chess.Choose(pawn.Colour, chess.FourthRank, chess.FifthRank)
	if !landing[pawn.Position] {
		return errors.Wrapf(errors.ErrInvalidBoard, "en passant pawn %s not on its double push row", pawn.Position)
	}
	return nil
}
