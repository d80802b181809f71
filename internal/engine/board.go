// Package engine provides chess move generation, move application and the
// legality rules built on top of them.
//
// A Board is an immutable snapshot. Building one generates every piece's
// moves for both colours and wraps each colour in a Player, which owns the
// legality checks. Applying a Move never touches the Board it came from; it
// produces the next Board through a fresh Builder.
package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board represents an immutable chess position.
type Board struct {
	squares [chess.NumSquares]Square

	whitePieces []chess.Piece
	blackPieces []chess.Piece

	whitePlayer *Player
	blackPlayer *Player
	current     *Player

	enPassantPawn chess.Piece
	hasEnPassant  bool

	halfmoveClock  int
	fullmoveNumber int
}

// newBoard freezes the builder's contents. The builder has already been
// validated, so king lookup cannot fail here.
func newBoard(b *Builder) *Board {
	board := &Board{
		enPassantPawn:  b.enPassantPawn,
		hasEnPassant:   b.hasEnPassant,
		halfmoveClock:  b.halfmoveClock,
		fullmoveNumber: b.fullmoveNumber,
	}

	for i := range board.squares {
		c := chess.Coordinate(i)
		piece, ok := b.pieces[c]
		board.squares[i] = newSquare(c, piece, ok)
	}

	board.whitePieces = activePieces(&board.squares, chess.White)
	board.blackPieces = activePieces(&board.squares, chess.Black)

	whiteMoves := generateMoves(board, board.whitePieces)
	blackMoves := generateMoves(board, board.blackPieces)

	board.whitePlayer = newPlayer(board, chess.White, whiteMoves, blackMoves)
	board.blackPlayer = newPlayer(board, chess.Black, blackMoves, whiteMoves)
	board.current = board.Player(b.moveMaker)

	return board
}

// activePieces scans the squares for pieces of one colour in coordinate order.
func activePieces(squares *[chess.NumSquares]Square, colour chess.Colour) []chess.Piece {
	var pieces []chess.Piece
	for _, square := range squares {
		if piece, ok := square.Piece(); ok && piece.Colour == colour {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

// Square returns the square at c. Every valid coordinate has a square;
// anything outside [0,63] returns ErrInvalidCoordinate.
func (b *Board) Square(c chess.Coordinate) (Square, error) {
	if !c.IsValid() {
		return Square{}, errors.Wrapf(errors.ErrInvalidCoordinate, "square %d", int(c))
	}
	return b.squares[c], nil
}

// square is the unchecked form of Square for generation code that has
// already range-checked c.
func (b *Board) square(c chess.Coordinate) Square {
	return b.squares[c]
}

// ActivePieces returns a copy of the pieces of one colour.
func (b *Board) ActivePieces(colour chess.Colour) []chess.Piece {
	pieces := chess.Choose(colour, b.whitePieces, b.blackPieces)
	return append([]chess.Piece(nil), pieces...)
}

// CurrentPlayer returns the player whose turn it is.
func (b *Board) CurrentPlayer() *Player {
	return b.current
}

// SideToMove returns the colour of the current player.
func (b *Board) SideToMove() chess.Colour {
	return b.current.colour
}

// Player returns the player for colour.
func (b *Board) Player(colour chess.Colour) *Player {
	return chess.Choose(colour, b.whitePlayer, b.blackPlayer)
}

// WhitePlayer returns the white player.
func (b *Board) WhitePlayer() *Player {
	return b.whitePlayer
}

// BlackPlayer returns the black player.
func (b *Board) BlackPlayer() *Player {
	return b.blackPlayer
}

// AllLegalMoves returns white's moves followed by black's, castles included.
// The slice is a fresh copy on every call.
func (b *Board) AllLegalMoves() []Move {
	moves := make([]Move, 0, len(b.whitePlayer.legalMoves)+len(b.blackPlayer.legalMoves))
	moves = append(moves, b.whitePlayer.legalMoves...)
	return append(moves, b.blackPlayer.legalMoves...)
}

// EnPassantPawn returns the pawn that advanced two squares on the previous
// ply, if any.
func (b *Board) EnPassantPawn() (chess.Piece, bool) {
	return b.enPassantPawn, b.hasEnPassant
}

// EnPassantTarget returns the square the en passant pawn skipped over, which
// is where a capturing pawn lands. It returns NoCoordinate when there is none.
func (b *Board) EnPassantTarget() chess.Coordinate {
	if !b.hasEnPassant {
		return chess.NoCoordinate
	}
	pawn := b.enPassantPawn
	return pawn.Position - chess.Coordinate(pawn.Colour.Direction()*chess.SquaresPerRow)
}

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (b *Board) HalfmoveClock() int {
	return b.halfmoveClock
}

// FullmoveNumber returns the move number, starting at 1 and incremented after Black moves.
func (b *Board) FullmoveNumber() int {
	return b.fullmoveNumber
}

// String draws the board as eight rows of three-character cells, black
// pieces in lower case and empty squares as "-".
func (b *Board) String() string {
	var sb strings.Builder
	for i, square := range b.squares {
		text := square.String()
		sb.WriteString(strings.Repeat(" ", 3-len(text)))
		sb.WriteString(text)
		if (i+1)%chess.SquaresPerRow == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
