package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Pawn offsets before scaling by the colour's direction.
const (
	pawnAdvance      = 8
	pawnJump         = 16
	pawnCaptureLeft  = 7
	pawnCaptureRight = 9
)

// pawnMoves generates single and double advances, diagonal captures and
// en passant captures.
func pawnMoves(board *Board, piece chess.Piece) []Move {
	var moves []Move
	dir := piece.Colour.Direction()

	one := piece.Position + chess.Coordinate(dir*pawnAdvance)
	if one.IsValid() && !board.square(one).IsOccupied() {
		moves = append(moves, newMove(NormalMove, board, piece, one))

		two := piece.Position + chess.Coordinate(dir*pawnJump)
		if !piece.Moved && chess.HomeRow(piece.Colour, piece.Position) &&
			two.IsValid() && !board.square(two).IsOccupied() {
			moves = append(moves, newMove(PawnJump, board, piece, two))
		}
	}

	for _, offset := range []int{pawnCaptureLeft, pawnCaptureRight} {
		if pawnCaptureExcluded(piece, offset) {
			continue
		}
		to := piece.Position + chess.Coordinate(dir*offset)
		if !to.IsValid() {
			continue
		}
		if move, ok := pawnCapture(board, piece, to); ok {
			moves = append(moves, move)
		}
	}
	return moves
}

// pawnCaptureExcluded reports whether the diagonal offset would wrap from
// the pawn's column. Scaled by direction, 7 leans towards the eighth column
// for White and the first column for Black; 9 the other way round.
func pawnCaptureExcluded(piece chess.Piece, offset int) bool {
	c := piece.Position
	white := piece.Colour == chess.White
	switch offset {
	case pawnCaptureLeft:
		return (chess.EighthColumn[c] && white) || (chess.FirstColumn[c] && !white)
	case pawnCaptureRight:
		return (chess.FirstColumn[c] && white) || (chess.EighthColumn[c] && !white)
	}
	return false
}

// pawnCapture returns an ordinary capture onto an opposing piece, or an en
// passant capture when to is the board's en passant target and the square
// behind it holds the opposing pawn that just advanced two squares.
func pawnCapture(board *Board, piece chess.Piece, to chess.Coordinate) (Move, bool) {
	if target, ok := board.square(to).Piece(); ok {
		if target.Colour != piece.Colour {
			return newCapture(CaptureMove, board, piece, to, target), true
		}
		return Move{}, false
	}

	if to != board.EnPassantTarget() {
		return Move{}, false
	}
	behind := to - chess.Coordinate(piece.Colour.Direction()*chess.SquaresPerRow)
	if !behind.IsValid() {
		return Move{}, false
	}
	pawn, ok := board.square(behind).Piece()
	epPawn, _ := board.EnPassantPawn()
	if !ok || pawn != epPawn || pawn.Kind != chess.Pawn || pawn.Colour == piece.Colour {
		return Move{}, false
	}
	return newCapture(EnPassantCapture, board, piece, to, pawn), true
}

// pawnAttacks returns the squares a pawn attacks diagonally, whether or not
// anything stands on them.
func pawnAttacks(piece chess.Piece) []chess.Coordinate {
	var squares []chess.Coordinate
	dir := piece.Colour.Direction()
	for _, offset := range []int{pawnCaptureLeft, pawnCaptureRight} {
		if pawnCaptureExcluded(piece, offset) {
			continue
		}
		if to := piece.Position + chess.Coordinate(dir*offset); to.IsValid() {
			squares = append(squares, to)
		}
	}
	return squares
}
