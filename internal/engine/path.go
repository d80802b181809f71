package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction vectors and edge exclusions for the sliding pieces.
var (
	bishopVectors    = []int{-9, -7, 7, 9}
	bishopExclusions = exclusions{
		first:  []int{-9, 7},
		eighth: []int{-7, 9},
	}

	rookVectors    = []int{-8, -1, 1, 8}
	rookExclusions = exclusions{
		first:  []int{-1},
		eighth: []int{1},
	}

	queenVectors    = append(append([]int(nil), bishopVectors...), rookVectors...)
	queenExclusions = exclusions{
		first:  append(append([]int(nil), bishopExclusions.first...), rookExclusions.first...),
		eighth: append(append([]int(nil), bishopExclusions.eighth...), rookExclusions.eighth...),
	}
)

// slidingMoves builds the generator for a piece that walks each vector
// until it leaves the board, reaches an edge, or meets another piece.
func slidingMoves(vectors []int, excl exclusions) generator {
	return func(board *Board, piece chess.Piece) []Move {
		var moves []Move
		for _, vector := range vectors {
			moves = append(moves, walk(board, piece, vector, excl)...)
		}
		return moves
	}
}

// walk follows one vector. The wrap test is made against the square the
// walk currently stands on, before each step.
func walk(board *Board, piece chess.Piece, vector int, excl exclusions) []Move {
	var moves []Move
	current := piece.Position
	for current.IsValid() {
		if excl.excludes(current, vector) {
			break
		}
		current += chess.Coordinate(vector)
		if !current.IsValid() {
			break
		}
		move, ok := moveOnto(board, piece, current)
		if ok {
			moves = append(moves, move)
		}
		if board.square(current).IsOccupied() {
			break
		}
	}
	return moves
}
