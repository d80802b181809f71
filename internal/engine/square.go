package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Square is one slot of the board: empty or holding a piece.
// Squares are plain values and never change after a board is built.
type Square struct {
	coordinate chess.Coordinate
	piece      chess.Piece
	occupied   bool
}

// emptySquares holds the empty value of every coordinate, indexed directly.
var emptySquares = func() [chess.NumSquares]Square {
	var squares [chess.NumSquares]Square
	for i := range squares {
		squares[i] = Square{coordinate: chess.Coordinate(i)}
	}
	return squares
}()

// newSquare returns an occupied square for piece, or the cached empty
// square for c when there is no piece.
func newSquare(c chess.Coordinate, piece chess.Piece, occupied bool) Square {
	if !occupied {
		return emptySquares[c]
	}
	return Square{coordinate: c, piece: piece, occupied: true}
}

// Coordinate returns the square's index.
func (s Square) Coordinate() chess.Coordinate {
	return s.coordinate
}

// IsOccupied returns true if a piece stands on the square.
func (s Square) IsOccupied() bool {
	return s.occupied
}

// Piece returns the piece on the square; ok is false for an empty square.
func (s Square) Piece() (piece chess.Piece, ok bool) {
	return s.piece, s.occupied
}

// String returns "-" for an empty square or the piece's FEN letter.
func (s Square) String() string {
	if !s.occupied {
		return "-"
	}
	return string(s.piece.Letter())
}
