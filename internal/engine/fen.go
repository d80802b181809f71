package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castlingRight ties a FEN castling letter to the king and rook home squares
// it describes.
type castlingRight struct {
	letter byte
	colour chess.Colour
	king   chess.Coordinate
	rook   chess.Coordinate
}

var castlingRights = []castlingRight{
	{'K', chess.White, 60, 63},
	{'Q', chess.White, 60, 56},
	{'k', chess.Black, 4, 7},
	{'q', chess.Black, 4, 0},
}

// NewBoardFromFEN creates a board from a FEN string. Only the placement
// field is required; missing fields default to White to move, no castling,
// no en passant and clocks 0 1.
//
// Boards track whether each piece has moved rather than castling rights, so
// the flags are inferred: a pawn off its home row has moved, and a king or
// rook on its home square is unmoved only when a castling right names it.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, fmt.Errorf("too many FEN fields: %w", errors.ErrInvalidFEN)
	}

	pieces, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}

	field := func(i int, fallback string) string {
		if i < len(parts) {
			return parts[i]
		}
		return fallback
	}

	moveMaker, err := parseSideToMove(field(1, "w"))
	if err != nil {
		return nil, err
	}
	unmoved, err := parseCastlingRights(field(2, "-"), pieces)
	if err != nil {
		return nil, err
	}
	halfmove, fullmove, err := parseClocks(field(4, "0"), field(5, "1"))
	if err != nil {
		return nil, err
	}

	b := NewBuilder().SetMoveMaker(moveMaker).SetClocks(halfmove, fullmove)
	for c, piece := range pieces {
		piece.Moved = hasMoved(piece, unmoved[c])
		pieces[c] = piece
		b.SetPiece(piece)
	}

	if ep := field(3, "-"); ep != "-" {
		pawn, err := parseEnPassant(ep, moveMaker, pieces)
		if err != nil {
			return nil, err
		}
		b.SetEnPassantPawn(pawn)
	}

	board, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err)
	}
	return board, nil
}

// MustFEN is like NewBoardFromFEN but panics on bad input.
// It is intended for fixed positions in tables and tests.
func MustFEN(fen string) *Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions reads the placement field. FEN lists the eighth rank
// first, which is coordinate order.
func parsePiecePositions(positions string) (map[chess.Coordinate]chess.Piece, error) {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.SquaresPerRow {
		return nil, fmt.Errorf("expected 8 ranks, got %d: %w", len(rows), errors.ErrInvalidFEN)
	}

	pieces := make(map[chess.Coordinate]chess.Piece)
	for row, text := range rows {
		column := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				column += int(c - '0')
				continue
			}
			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if column >= chess.SquaresPerRow {
				return nil, fmt.Errorf("rank %d too long: %w", 8-row, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			at := chess.At(column, row)
			pieces[at] = chess.NewPiece(kind, colour, at)
			column++
		}
		if column != chess.SquaresPerRow {
			return nil, fmt.Errorf("rank %d has %d squares: %w", 8-row, column, errors.ErrInvalidFEN)
		}
	}
	return pieces, nil
}

func parseSideToMove(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", field, errors.ErrInvalidFEN)
}

// parseCastlingRights returns the home squares whose king or rook keeps
// its unmoved flag. A right naming a square without the matching piece is
// rejected.
func parseCastlingRights(field string, pieces map[chess.Coordinate]chess.Piece) (map[chess.Coordinate]bool, error) {
	unmoved := make(map[chess.Coordinate]bool)
	if field == "-" {
		return unmoved, nil
	}
	for i := 0; i < len(field); i++ {
		right, ok := findCastlingRight(field[i])
		if !ok {
			return nil, fmt.Errorf("invalid castling right: %c: %w", field[i], errors.ErrInvalidFEN)
		}
		king, kingOK := pieces[right.king]
		rook, rookOK := pieces[right.rook]
		if !kingOK || king.Kind != chess.King || king.Colour != right.colour ||
			!rookOK || rook.Kind != chess.Rook || rook.Colour != right.colour {
			return nil, fmt.Errorf("castling right %c without king and rook at home: %w", field[i], errors.ErrInvalidFEN)
		}
		unmoved[right.king] = true
		unmoved[right.rook] = true
	}
	return unmoved, nil
}

func findCastlingRight(letter byte) (castlingRight, bool) {
	for _, right := range castlingRights {
		if right.letter == letter {
			return right, true
		}
	}
	return castlingRight{}, false
}

// hasMoved infers the moved flag for a piece read from FEN.
func hasMoved(piece chess.Piece, castles bool) bool {
	switch piece.Kind {
	case chess.Pawn:
		return !chess.HomeRow(piece.Colour, piece.Position)
	case chess.King, chess.Rook:
		return !castles
	}
	return false
}

// parseEnPassant maps the target square to the pawn standing in front of it.
// The pawn belongs to the side that is not to move.
func parseEnPassant(field string, moveMaker chess.Colour, pieces map[chess.Coordinate]chess.Piece) (chess.Piece, error) {
	target, err := chess.ParseCoordinate(field)
	if err != nil {
		return chess.Piece{}, fmt.Errorf("invalid en passant square %q: %w", field, errors.ErrInvalidFEN)
	}
	pusher := moveMaker.Opposite()
	at := target + chess.Coordinate(pusher.Direction()*chess.SquaresPerRow)
	pawn, ok := pieces[at]
	if !at.IsValid() || !ok || pawn.Kind != chess.Pawn || pawn.Colour != pusher {
		return chess.Piece{}, fmt.Errorf("no pawn in front of en passant square %s: %w", field, errors.ErrInvalidFEN)
	}
	return pawn, nil
}

func parseClocks(halfmoveField, fullmoveField string) (halfmove, fullmove int, err error) {
	halfmove, err = strconv.Atoi(halfmoveField)
	if err != nil || halfmove < 0 {
		return 0, 0, fmt.Errorf("invalid halfmove clock %q: %w", halfmoveField, errors.ErrInvalidFEN)
	}
	fullmove, err = strconv.Atoi(fullmoveField)
	if err != nil || fullmove < 1 {
		return 0, 0, fmt.Errorf("invalid fullmove number %q: %w", fullmoveField, errors.ErrInvalidFEN)
	}
	return halfmove, fullmove, nil
}

// BoardToFEN converts a board to a FEN string. Castling rights are derived
// from unmoved kings and rooks on their home squares.
func BoardToFEN(board *Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(chess.Choose(board.SideToMove(), byte('w'), byte('b')))
	sb.WriteByte(' ')
	sb.WriteString(CastlingRights(board))
	sb.WriteByte(' ')
	if target := board.EnPassantTarget(); target.IsValid() {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(board.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(board.fullmoveNumber))

	return sb.String()
}

func writePiecePositions(sb *strings.Builder, board *Board) {
	for row := 0; row < chess.SquaresPerRow; row++ {
		empty := 0
		for column := 0; column < chess.SquaresPerRow; column++ {
			piece, ok := board.square(chess.At(column, row)).Piece()
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < chess.SquaresPerRow-1 {
			sb.WriteByte('/')
		}
	}
}

// CastlingRights returns the FEN castling field of the board: the letters
// of every unmoved king and rook pair on its home squares, or "-".
func CastlingRights(board *Board) string {
	var rights []byte
	for _, right := range castlingRights {
		king, kingOK := board.square(right.king).Piece()
		rook, rookOK := board.square(right.rook).Piece()
		if !kingOK || king.Kind != chess.King || king.Colour != right.colour || king.Moved {
			continue
		}
		if !rookOK || rook.Kind != chess.Rook || rook.Colour != right.colour || rook.Moved {
			continue
		}
		rights = append(rights, right.letter)
	}
	if len(rights) == 0 {
		return "-"
	}
	return string(rights)
}
