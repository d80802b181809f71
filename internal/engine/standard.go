package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// backRank is the order of pieces along each colour's back rank, a to h.
var backRank = [chess.SquaresPerRow]chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// NewStandardBoard returns the initial position with White to move.
func NewStandardBoard() *Board {
	b := NewBuilder()
	for column, kind := range backRank {
		b.SetPiece(chess.NewPiece(kind, chess.Black, chess.At(column, 0)))
		b.SetPiece(chess.NewPiece(chess.Pawn, chess.Black, chess.At(column, 1)))
		b.SetPiece(chess.NewPiece(chess.Pawn, chess.White, chess.At(column, 6)))
		b.SetPiece(chess.NewPiece(kind, chess.White, chess.At(column, 7)))
	}
	board, err := b.SetMoveMaker(chess.White).Build()
	if err != nil {
		panic("engine: standard position: " + err.Error())
	}
	return board
}
