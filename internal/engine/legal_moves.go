package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// generator produces the moves of one piece on a board, without regard to
// whether they leave the mover's king attacked.
type generator func(board *Board, piece chess.Piece) []Move

// generators maps every piece kind to its generation rule.
var generators = [...]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: slidingMoves(bishopVectors, bishopExclusions),
	chess.Rook:   slidingMoves(rookVectors, rookExclusions),
	chess.Queen:  slidingMoves(queenVectors, queenExclusions),
	chess.King:   kingMoves,
}

// generateMoves collects the moves of every piece in pieces.
func generateMoves(board *Board, pieces []chess.Piece) []Move {
	var moves []Move
	for _, piece := range pieces {
		moves = append(moves, generators[piece.Kind](board, piece)...)
	}
	return moves
}

// exclusions lists, per edge column, the offsets that would wrap around the
// board from a square on that column.
type exclusions struct {
	first, second, seventh, eighth []int
}

// excludes reports whether offset from c would wrap around an edge.
func (e exclusions) excludes(c chess.Coordinate, offset int) bool {
	return (chess.FirstColumn[c] && containsOffset(e.first, offset)) ||
		(chess.SecondColumn[c] && containsOffset(e.second, offset)) ||
		(chess.SeventhColumn[c] && containsOffset(e.seventh, offset)) ||
		(chess.EighthColumn[c] && containsOffset(e.eighth, offset))
}

func containsOffset(offsets []int, offset int) bool {
	for _, o := range offsets {
		if o == offset {
			return true
		}
	}
	return false
}

var (
	knightOffsets    = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	knightExclusions = exclusions{
		first:   []int{-17, -10, 6, 15},
		second:  []int{-10, 6},
		seventh: []int{-6, 10},
		eighth:  []int{-15, -6, 10, 17},
	}

	kingOffsets    = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	kingExclusions = exclusions{
		first:  []int{-9, -1, 7},
		eighth: []int{-7, 1, 9},
	}
)

func knightMoves(board *Board, piece chess.Piece) []Move {
	return offsetMoves(board, piece, knightOffsets, knightExclusions)
}

func kingMoves(board *Board, piece chess.Piece) []Move {
	return offsetMoves(board, piece, kingOffsets, kingExclusions)
}

// offsetMoves applies each offset once. Offsets that would wrap are rejected
// before the destination is range checked.
func offsetMoves(board *Board, piece chess.Piece, offsets []int, excl exclusions) []Move {
	var moves []Move
	for _, offset := range offsets {
		if excl.excludes(piece.Position, offset) {
			continue
		}
		to := piece.Position + chess.Coordinate(offset)
		if !to.IsValid() {
			continue
		}
		if move, ok := moveOnto(board, piece, to); ok {
			moves = append(moves, move)
		}
	}
	return moves
}

// moveOnto returns a normal move to an empty square, a capture of an
// opposing piece, or nothing when the square holds a piece of the mover.
func moveOnto(board *Board, piece chess.Piece, to chess.Coordinate) (Move, bool) {
	target, occupied := board.square(to).Piece()
	if !occupied {
		return newMove(NormalMove, board, piece, to), true
	}
	if target.Colour != piece.Colour {
		return newCapture(CaptureMove, board, piece, to, target), true
	}
	return Move{}, false
}
