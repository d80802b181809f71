package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func sq(s string) chess.Coordinate {
	return chess.MustParseCoordinate(s)
}

// play applies each coordinate move through the current player and fails
// the test on anything but Done.
func play(t *testing.T, board *Board, moves ...string) *Board {
	t.Helper()
	for _, text := range moves {
		move, err := ParseMove(board, text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		transition := board.CurrentPlayer().AttemptMove(move)
		if !transition.Status.IsDone() {
			t.Fatalf("AttemptMove(%s) = %s, want Done", text, transition.Status)
		}
		board = transition.Board
	}
	return board
}

// moveNames returns the from-to names of moves, promotions without their
// letter.
func moveNames(moves []Move) []string {
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.From().String()+m.To().String())
	}
	return names
}

func kings() *Builder {
	return NewBuilder().
		SetPiece(chess.NewPiece(chess.King, chess.White, sq("e1"))).
		SetPiece(chess.NewPiece(chess.King, chess.Black, sq("e8")))
}

func TestStandardBoard(t *testing.T) {
	board := NewStandardBoard()

	testutil.AssertEqual(t, board.SideToMove(), chess.White)
	testutil.AssertEqual(t, len(board.ActivePieces(chess.White)), 16)
	testutil.AssertEqual(t, len(board.ActivePieces(chess.Black)), 16)
	testutil.AssertEqual(t, len(board.WhitePlayer().LegalMoves()), 20)
	testutil.AssertEqual(t, len(board.BlackPlayer().LegalMoves()), 20)
	testutil.AssertEqual(t, len(board.AllLegalMoves()), 40)
	testutil.AssertEqual(t, board.WhitePlayer().King().Position, sq("e1"))
	testutil.AssertEqual(t, board.BlackPlayer().King().Position, sq("e8"))
	testutil.AssertFalse(t, board.WhitePlayer().IsInCheck())
	testutil.AssertFalse(t, board.BlackPlayer().IsInCheck())
	testutil.AssertEqual(t, BoardToFEN(board), InitialFEN)
}

func TestBoardSquare(t *testing.T) {
	board := NewStandardBoard()

	tests := []struct {
		name     string
		square   string
		occupied bool
		kind     chess.Kind
		colour   chess.Colour
	}{
		{"black rook a8", "a8", true, chess.Rook, chess.Black},
		{"black king e8", "e8", true, chess.King, chess.Black},
		{"white queen d1", "d1", true, chess.Queen, chess.White},
		{"white pawn e2", "e2", true, chess.Pawn, chess.White},
		{"empty e4", "e4", false, chess.NoKind, chess.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			square, err := board.Square(sq(tt.square))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, square.IsOccupied(), tt.occupied)
			piece, ok := square.Piece()
			testutil.AssertEqual(t, ok, tt.occupied)
			if ok {
				testutil.AssertEqual(t, piece.Kind, tt.kind)
				testutil.AssertEqual(t, piece.Colour, tt.colour)
				testutil.AssertEqual(t, piece.Position, sq(tt.square))
			}
		})
	}
}

func TestBoardSquareInvalid(t *testing.T) {
	board := NewStandardBoard()
	for _, c := range []chess.Coordinate{-1, 64, 100} {
		_, err := board.Square(c)
		if !errors.Is(err, chesserrors.ErrInvalidCoordinate) {
			t.Errorf("Square(%d) error = %v, want ErrInvalidCoordinate", c, err)
		}
	}
}

func TestBoardString(t *testing.T) {
	got := NewStandardBoard().String()
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	testutil.AssertEqual(t, len(lines), 8)
	testutil.AssertEqual(t, lines[0], "  r  n  b  q  k  b  n  r")
	testutil.AssertEqual(t, lines[3], "  -  -  -  -  -  -  -  -")
	testutil.AssertEqual(t, lines[7], "  R  N  B  Q  K  B  N  R")
}

func TestBuilderConsumed(t *testing.T) {
	b := kings()
	_, err := b.Build()
	testutil.AssertNoError(t, err)

	_, err = b.Build()
	if !errors.Is(err, chesserrors.ErrBuilderConsumed) {
		t.Errorf("second Build() error = %v, want ErrBuilderConsumed", err)
	}
}

func TestBuilderKingCount(t *testing.T) {
	tests := []struct {
		name   string
		pieces []chess.Piece
	}{
		{"no kings", nil},
		{"no black king", []chess.Piece{
			chess.NewPiece(chess.King, chess.White, sq("e1")),
		}},
		{"two white kings", []chess.Piece{
			chess.NewPiece(chess.King, chess.White, sq("e1")),
			chess.NewPiece(chess.King, chess.White, sq("a1")),
			chess.NewPiece(chess.King, chess.Black, sq("e8")),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			for _, piece := range tt.pieces {
				b.SetPiece(piece)
			}
			_, err := b.Build()
			if !errors.Is(err, chesserrors.ErrInvalidBoard) {
				t.Errorf("Build() error = %v, want ErrInvalidBoard", err)
			}
		})
	}
}

func TestBuilderEnPassantValidation(t *testing.T) {
	pawn := chess.NewPiece(chess.Pawn, chess.White, sq("e4")).MovedTo(sq("e4"))

	tests := []struct {
		name    string
		build   func() *Builder
		wantErr bool
	}{
		{"valid", func() *Builder {
			return kings().SetPiece(pawn).SetEnPassantPawn(pawn).SetMoveMaker(chess.Black)
		}, false},
		{"pawn missing", func() *Builder {
			return kings().SetEnPassantPawn(pawn).SetMoveMaker(chess.Black)
		}, true},
		{"pawn of side to move", func() *Builder {
			return kings().SetPiece(pawn).SetEnPassantPawn(pawn).SetMoveMaker(chess.White)
		}, true},
		{"wrong row", func() *Builder {
			p := chess.NewPiece(chess.Pawn, chess.White, sq("e3")).MovedTo(sq("e3"))
			return kings().SetPiece(p).SetEnPassantPawn(p).SetMoveMaker(chess.Black)
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build().Build()
			if tt.wantErr && !errors.Is(err, chesserrors.ErrInvalidBoard) {
				t.Errorf("Build() error = %v, want ErrInvalidBoard", err)
			}
			if !tt.wantErr {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestBuilderDefaults(t *testing.T) {
	board, err := kings().Build()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board.SideToMove(), chess.White)
	testutil.AssertEqual(t, board.HalfmoveClock(), 0)
	testutil.AssertEqual(t, board.FullmoveNumber(), 1)
	_, ok := board.EnPassantPawn()
	testutil.AssertFalse(t, ok)
	testutil.AssertEqual(t, board.EnPassantTarget(), chess.NoCoordinate)
}

func TestActivePiecesIsCopy(t *testing.T) {
	board := NewStandardBoard()
	pieces := board.ActivePieces(chess.White)
	pieces[0] = chess.Piece{}
	testutil.AssertEqual(t, len(board.ActivePieces(chess.White)), 16)
	testutil.AssertTrue(t, board.ActivePieces(chess.White)[0] != chess.Piece{})
}

func TestPlayerOpponent(t *testing.T) {
	board := NewStandardBoard()
	testutil.AssertTrue(t, board.WhitePlayer().Opponent() == board.BlackPlayer())
	testutil.AssertTrue(t, board.BlackPlayer().Opponent() == board.WhitePlayer())
	testutil.AssertTrue(t, board.CurrentPlayer() == board.WhitePlayer())

	next := play(t, board, "e2e4")
	testutil.AssertTrue(t, next.CurrentPlayer() == next.BlackPlayer())
	testutil.AssertEqual(t, next.CurrentPlayer().Colour(), chess.Black)
}

func TestBoardImmutableAfterApply(t *testing.T) {
	board := NewStandardBoard()
	before := board.String()

	move := FindMove(board, sq("e2"), sq("e4"))
	next, err := move.Apply()
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, board.String(), before)
	testutil.AssertEqual(t, len(board.WhitePlayer().LegalMoves()), 20)
	testutil.AssertTrue(t, next != board)
}
