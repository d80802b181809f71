package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// castles returns the castle classes available to the player.
func castles(p *Player) []MoveClass {
	var classes []MoveClass
	for _, m := range p.LegalMoves() {
		if m.IsCastle() {
			classes = append(classes, m.Class())
		}
	}
	return classes
}

func TestCastlingAvailability(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		white []MoveClass
		black []MoveClass
	}{
		{
			name:  "both sides free",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			white: []MoveClass{KingsideCastle, QueensideCastle},
			black: []MoveClass{KingsideCastle, QueensideCastle},
		},
		{
			name:  "standard position is blocked",
			fen:   InitialFEN,
			white: nil,
			black: nil,
		},
		{
			name:  "no rights",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1",
			white: nil,
			black: nil,
		},
		{
			name:  "only queen side rights",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w Qq - 0 1",
			white: []MoveClass{QueensideCastle},
			black: []MoveClass{QueensideCastle},
		},
		{
			name:  "knight between on queen side",
			fen:   "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			white: []MoveClass{KingsideCastle},
			black: []MoveClass{KingsideCastle, QueensideCastle},
		},
		{
			name:  "king in check",
			fen:   "r3k2r/8/8/8/8/4r3/8/R3K2R w KQkq - 0 1",
			white: nil,
			black: []MoveClass{KingsideCastle, QueensideCastle},
		},
		{
			name:  "rook attacks crossed square",
			fen:   "r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1",
			white: []MoveClass{QueensideCastle},
			black: []MoveClass{KingsideCastle, QueensideCastle},
		},
		{
			name:  "pawn attacks crossed square",
			fen:   "r3k2r/8/8/8/8/8/6p1/R3K2R w KQkq - 0 1",
			white: []MoveClass{QueensideCastle},
			black: []MoveClass{KingsideCastle, QueensideCastle},
		},
		{
			name:  "pawn guards empty crossed square",
			fen:   "r3k2r/8/8/8/8/8/1p6/R3K2R w KQkq - 0 1",
			white: []MoveClass{KingsideCastle},
			black: []MoveClass{KingsideCastle, QueensideCastle},
		},
		{
			name:  "attacked b-file square is not crossed",
			fen:   "r3k2r/8/8/8/8/1r6/8/R3K2R w KQkq - 0 1",
			white: []MoveClass{KingsideCastle, QueensideCastle},
			black: []MoveClass{KingsideCastle, QueensideCastle},
		},
		{
			name:  "bishop attacks black crossed square",
			fen:   "r3k2r/8/8/8/2B5/8/8/R3K2R w KQkq - 0 1",
			white: []MoveClass{KingsideCastle, QueensideCastle},
			black: []MoveClass{QueensideCastle},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := MustFEN(tt.fen)
			testutil.AssertSameSet(t, castles(board.WhitePlayer()), tt.white, "white castles")
			testutil.AssertSameSet(t, castles(board.BlackPlayer()), tt.black, "black castles")
		})
	}
}

func TestCastleApply(t *testing.T) {
	board := MustFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	tests := []struct {
		name          string
		board         *Board
		move          string
		king, rook    string
		emptied       []string
		colour        chess.Colour
		wantFENPrefix string
	}{
		{"white king side", board, "e1g1", "g1", "f1", []string{"e1", "h1"}, chess.White, "r3k2r/8/8/8/8/8/8/R4RK1 b kq"},
		{"white queen side", board, "e1c1", "c1", "d1", []string{"e1", "a1", "b1"}, chess.White, "r3k2r/8/8/8/8/8/8/2KR3R b kq"},
		{"black king side", MustFEN("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1"), "e8g8", "g8", "f8", []string{"e8", "h8"}, chess.Black, "r4rk1/8/8/8/8/8/8/R3K2R w KQ"},
		{"black queen side", MustFEN("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1"), "e8c8", "c8", "d8", []string{"e8", "a8", "b8"}, chess.Black, "2kr3r/8/8/8/8/8/8/R3K2R w KQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			castle, err := ParseMove(tt.board, tt.move)
			testutil.AssertNoError(t, err)
			rookPiece, rookTo, ok := castle.CastleRook()
			testutil.AssertTrue(t, ok, "castle names its rook")
			testutil.AssertEqual(t, rookPiece.Position, sq(tt.emptied[1]))
			testutil.AssertEqual(t, rookTo, sq(tt.rook))

			next := play(t, tt.board, tt.move)

			king, _ := next.Square(sq(tt.king))
			piece, _ := king.Piece()
			testutil.AssertEqual(t, piece.Kind, chess.King)
			testutil.AssertEqual(t, piece.Colour, tt.colour)
			testutil.AssertTrue(t, piece.Moved)

			rook, _ := next.Square(sq(tt.rook))
			piece, _ = rook.Piece()
			testutil.AssertEqual(t, piece.Kind, chess.Rook)
			testutil.AssertTrue(t, piece.Moved)

			for _, s := range tt.emptied {
				square, _ := next.Square(sq(s))
				testutil.AssertFalse(t, square.IsOccupied(), s+" empty")
			}
			testutil.AssertContains(t, BoardToFEN(next), tt.wantFENPrefix)
		})
	}
}

func TestCastleRookOnlyForCastles(t *testing.T) {
	board := MustFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	for _, text := range []string{"e1f1", "h1h8", "a1a2"} {
		move, err := ParseMove(board, text)
		testutil.AssertNoError(t, err)
		_, _, ok := move.CastleRook()
		testutil.AssertFalse(t, ok, text)
	}
	_, _, ok := NoMove.CastleRook()
	testutil.AssertFalse(t, ok, "null move")
}

func TestCastlingLostAfterMoves(t *testing.T) {
	start := MustFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")

	rookMoved := play(t, start, "h1g1", "h8g8", "g1h1", "g8h8")
	testutil.AssertSameSet(t, castles(rookMoved.WhitePlayer()), []MoveClass{QueensideCastle})
	testutil.AssertSameSet(t, castles(rookMoved.BlackPlayer()), []MoveClass{QueensideCastle})

	kingMoved := play(t, start, "e1f1", "e8f8", "f1e1", "f8e8")
	testutil.AssertSameSet(t, castles(kingMoved.WhitePlayer()), []MoveClass(nil))
	testutil.AssertSameSet(t, castles(kingMoved.BlackPlayer()), []MoveClass(nil))
}

func TestCastlingRookCaptured(t *testing.T) {
	board := MustFEN("r3k2r/8/8/8/8/8/8/R3K1NR b KQkq - 0 1")
	testutil.AssertSameSet(t, castles(board.WhitePlayer()), []MoveClass{QueensideCastle})

	next := play(t, board, "h8h1")
	testutil.AssertSameSet(t, castles(next.BlackPlayer()), []MoveClass{QueensideCastle})
	testutil.AssertSameSet(t, castles(next.WhitePlayer()), []MoveClass{QueensideCastle})
}
