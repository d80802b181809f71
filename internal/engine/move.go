package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	NullMove MoveClass = iota
	NormalMove
	CaptureMove
	PawnJump
	EnPassantCapture
	KingsideCastle
	QueensideCastle
)

// String returns the name of the move class.
func (c MoveClass) String() string {
	names := []string{"Null", "Normal", "Capture", "PawnJump", "EnPassant", "KingsideCastle", "QueensideCastle"}
	if int(c) >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move describes one ply on the board it was generated from.
// Construct moves through move generation; the zero value is NoMove.
type Move struct {
	class MoveClass
	board *Board
	piece chess.Piece
	to    chess.Coordinate

	// Captured piece for CaptureMove and EnPassantCapture.
	captured chess.Piece

	// Rook relocation for castles.
	rook   chess.Piece
	rookTo chess.Coordinate

	// Promotion kind for a pawn reaching the last row; NoKind means Queen.
	promotion chess.Kind
}

// NoMove is the null move sentinel returned when a lookup finds nothing.
// It can never be applied.
var NoMove = Move{class: NullMove, to: chess.NoCoordinate}

func newMove(class MoveClass, board *Board, piece chess.Piece, to chess.Coordinate) Move {
	return Move{class: class, board: board, piece: piece, to: to}
}

func newCapture(class MoveClass, board *Board, piece chess.Piece, to chess.Coordinate, captured chess.Piece) Move {
	m := newMove(class, board, piece, to)
	m.captured = captured
	return m
}

func newCastle(class MoveClass, board *Board, king chess.Piece, to chess.Coordinate, rook chess.Piece, rookTo chess.Coordinate) Move {
	m := newMove(class, board, king, to)
	m.rook = rook
	m.rookTo = rookTo
	return m
}

// Class returns the move's class.
func (m Move) Class() MoveClass {
	return m.class
}

// Board returns the board the move was generated on.
func (m Move) Board() *Board {
	return m.board
}

// MovedPiece returns the piece being moved (the king for castles).
func (m Move) MovedPiece() chess.Piece {
	return m.piece
}

// From returns the origin of the moved piece.
func (m Move) From() chess.Coordinate {
	if m.class == NullMove {
		return chess.NoCoordinate
	}
	return m.piece.Position
}

// To returns the destination of the moved piece.
func (m Move) To() chess.Coordinate {
	return m.to
}

// CapturedPiece returns the captured piece, if any.
func (m Move) CapturedPiece() (chess.Piece, bool) {
	return m.captured, m.IsCapture()
}

// CastleRook returns the rook of a castle and where it lands.
func (m Move) CastleRook() (rook chess.Piece, to chess.Coordinate, ok bool) {
	return m.rook, m.rookTo, m.IsCastle()
}

// IsNull returns true for the NoMove sentinel.
func (m Move) IsNull() bool {
	return m.class == NullMove
}

// IsCapture returns true if the move removes an opposing piece.
func (m Move) IsCapture() bool {
	return m.class == CaptureMove || m.class == EnPassantCapture
}

// IsCastle returns true if this is a castling move.
func (m Move) IsCastle() bool {
	return m.class == KingsideCastle || m.class == QueensideCastle
}

// IsPromotion returns true if a pawn reaches its last row with this move.
func (m Move) IsPromotion() bool {
	return m.piece.Kind == chess.Pawn && chess.PromotionRow(m.piece.Colour, m.to)
}

// Promotion returns the kind a promoting pawn becomes.
func (m Move) Promotion() chess.Kind {
	if m.promotion == chess.NoKind {
		return chess.Queen
	}
	return m.promotion
}

// WithPromotion returns a copy of a promoting move that turns the pawn
// into kind. The copy is still Equal to the original.
func (m Move) WithPromotion(kind chess.Kind) (Move, error) {
	if !m.IsPromotion() {
		return m, errors.Wrapf(errors.ErrInvalidPromotion, "%s is not a promotion", m)
	}
	if !kind.IsPromotionTarget() {
		return m, errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %s", kind)
	}
	m.promotion = kind
	return m, nil
}

// Equal reports whether two moves describe the same ply. The board and the
// promotion choice are not part of a move's identity.
func (m Move) Equal(other Move) bool {
	return m.class == other.class &&
		m.piece == other.piece &&
		m.to == other.to &&
		m.captured == other.captured &&
		m.rook == other.rook &&
		m.rookTo == other.rookTo
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
// Castles are written "O-O" and "O-O-O", the null move "--".
func (m Move) String() string {
	switch m.class {
	case NullMove:
		return "--"
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	}
	return m.Coordinates()
}

// Coordinates returns the from-square and to-square of the move followed by
// the promotion letter, the form ParseMove reads back. Castles are named by
// the king's squares.
func (m Move) Coordinates() string {
	if m.class == NullMove {
		return "--"
	}
	s := m.From().String() + m.to.String()
	if m.IsPromotion() {
		s += string(m.Promotion().Letter() + ('a' - 'A'))
	}
	return s
}

// Apply produces the board that results from playing the move. The move is
// not checked for legality; use Player.AttemptMove for that. Applying NoMove
// returns ErrNullMove.
func (m Move) Apply() (*Board, error) {
	switch m.class {
	case NullMove:
		return nil, errors.ErrNullMove
	case NormalMove:
		return m.finish(m.builderWithout()).Build()
	case CaptureMove:
		return m.finish(m.builderWithout(m.captured)).Build()
	case PawnJump:
		b := m.finish(m.builderWithout())
		b.SetEnPassantPawn(m.piece.MovedTo(m.to))
		return b.Build()
	case EnPassantCapture:
		return m.finish(m.builderWithout(m.captured)).Build()
	case KingsideCastle, QueensideCastle:
		b := m.finish(m.builderWithout(m.rook))
		b.SetPiece(m.rook.MovedTo(m.rookTo))
		return b.Build()
	}
	return nil, errors.Wrapf(errors.ErrIllegalMove, "unknown move class %d", int(m.class))
}

// builderWithout starts the next position: every piece on the board except
// the moved piece and the listed ones, with the opponent to move.
func (m Move) builderWithout(omit ...chess.Piece) *Builder {
	b := NewBuilder()
	mover := m.piece.Colour
	for _, colour := range []chess.Colour{mover, mover.Opposite()} {
		for _, piece := range m.board.Player(colour).ActivePieces() {
			if piece == m.piece || containsPiece(omit, piece) {
				continue
			}
			b.SetPiece(piece)
		}
	}
	b.SetMoveMaker(mover.Opposite())
	return b
}

// finish places the moved piece at its destination and advances the clocks.
func (m Move) finish(b *Builder) *Builder {
	if m.IsPromotion() {
		b.SetPiece(m.piece.PromotedTo(m.Promotion(), m.to))
	} else {
		b.SetPiece(m.piece.MovedTo(m.to))
	}

	halfmove := m.board.halfmoveClock + 1
	if m.piece.Kind == chess.Pawn || m.IsCapture() {
		halfmove = 0
	}
	fullmove := m.board.fullmoveNumber
	if m.piece.Colour == chess.Black {
		fullmove++
	}
	return b.SetClocks(halfmove, fullmove)
}

func containsPiece(pieces []chess.Piece, piece chess.Piece) bool {
	for _, p := range pieces {
		if p == piece {
			return true
		}
	}
	return false
}
