package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// attacksOn returns the moves whose destination is c.
func attacksOn(c chess.Coordinate, moves []Move) []Move {
	var attacks []Move
	for _, move := range moves {
		if move.to == c {
			attacks = append(attacks, move)
		}
	}
	return attacks
}

// attackedSquares marks every square the given moves' pieces attack. Pawn
// advances are left out because they cannot capture, and each pawn's
// diagonals are marked whether or not anything stands there, so an empty
// square a king wants to cross is seen as attacked by a pawn beside it.
func attackedSquares(moves []Move, pieces []chess.Piece) [chess.NumSquares]bool {
	var attacked [chess.NumSquares]bool
	for _, move := range moves {
		if move.piece.Kind == chess.Pawn || move.IsCastle() {
			continue
		}
		attacked[move.to] = true
	}
	for _, piece := range pieces {
		if piece.Kind != chess.Pawn {
			continue
		}
		for _, c := range pawnAttacks(piece) {
			attacked[c] = true
		}
	}
	return attacked
}
