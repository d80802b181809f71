package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestFoolsMate(t *testing.T) {
	board := play(t, NewStandardBoard(), "f2f3", "e7e5", "g2g4", "d8h4")

	white := board.CurrentPlayer()
	testutil.AssertEqual(t, white.Colour(), chess.White)
	testutil.AssertTrue(t, white.IsInCheck())
	testutil.AssertTrue(t, white.IsInCheckmate())
	testutil.AssertFalse(t, white.IsInStalemate())
	testutil.AssertFalse(t, white.HasEscapeMoves())
	testutil.AssertEqual(t, len(white.DoneMoves()), 0)
	testutil.AssertEqual(t, white.Status(), Checkmate)
	testutil.AssertTrue(t, white.Status().IsTerminal())

	for _, move := range white.LegalMoves() {
		testutil.AssertEqual(t, white.AttemptMove(move).Status, LeavesPlayerInCheck, move.String())
	}
}

func TestPlayerStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Status
	}{
		{"start", InitialFEN, InProgress},
		{"rook check", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", Check},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Checkmate},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate},
		{"pawn stalemate", "k7/P7/1K6/8/8/8/8/8 b - - 0 1", Stalemate},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", Checkmate},
		{"escape by capture", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1", Check},
		{"escape by block", "4k3/8/8/8/8/2R5/PP6/K6r w - - 0 1", Check},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			player := MustFEN(tt.fen).CurrentPlayer()
			testutil.AssertEqual(t, player.Status(), tt.want)
			testutil.AssertEqual(t, player.IsInCheckmate(), tt.want == Checkmate)
			testutil.AssertEqual(t, player.IsInStalemate(), tt.want == Stalemate)
			testutil.AssertEqual(t, player.IsInCheck(), tt.want == Check || tt.want == Checkmate)
		})
	}
}

func TestAttemptMoveRejections(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want MoveStatus
	}{
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2d3", LeavesPlayerInCheck},
		{"pinned bishop stays on line", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2f1", LeavesPlayerInCheck},
		{"king steps out of check", "4k3/8/8/8/8/8/8/3rK3 w - - 0 1", "e1e2", Done},
		{"king steps onto attacked file", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", "e1d1", LeavesPlayerInCheck},
		{"ignoring check", "4k3/8/8/8/8/8/P7/r3K3 w - - 0 1", "a2a3", LeavesPlayerInCheck},
		{"en passant exposes king", "8/8/8/K2pP2r/8/8/8/7k w - d6 0 1", "e5d6", LeavesPlayerInCheck},
		{"legal capture", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1", "e1d2", Done},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := MustFEN(tt.fen)
			move, err := ParseMove(board, tt.move)
			testutil.AssertNoError(t, err)
			testutil.AssertFalse(t, move.IsNull(), "move exists")

			transition := board.CurrentPlayer().AttemptMove(move)
			testutil.AssertEqual(t, transition.Status, tt.want)
			if tt.want != Done {
				testutil.AssertTrue(t, transition.Board == board, "rejected move keeps the board")
			} else {
				testutil.AssertTrue(t, transition.Board != board)
			}
		})
	}
}

func TestAttemptMoveWrongSide(t *testing.T) {
	board := NewStandardBoard()
	var blackMove Move
	for _, m := range board.BlackPlayer().LegalMoves() {
		blackMove = m
		break
	}

	transition := board.WhitePlayer().AttemptMove(blackMove)
	testutil.AssertEqual(t, transition.Status, IllegalMove)
	testutil.AssertTrue(t, transition.Board == board)
	testutil.AssertFalse(t, board.WhitePlayer().IsMoveLegal(blackMove))
	testutil.AssertTrue(t, board.BlackPlayer().IsMoveLegal(blackMove))
}

// TestDoneMovesNeverLeaveCheck walks several games and confirms that after
// every accepted move the mover's king is not attacked by the new side to move.
func TestDoneMovesNeverLeaveCheck(t *testing.T) {
	for _, fen := range []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	} {
		board := MustFEN(fen)
		for ply := 0; ply < 12; ply++ {
			player := board.CurrentPlayer()
			done := player.DoneMoves()
			if len(done) == 0 {
				break
			}
			for _, move := range done {
				next, err := move.Apply()
				testutil.AssertNoError(t, err)
				king := next.Player(player.Colour()).King()
				testutil.AssertEqual(t, len(attacksOn(king.Position, next.CurrentPlayer().LegalMoves())), 0,
					fen+" "+move.String())
			}
			board = player.AttemptMove(done[(ply*7)%len(done)]).Board
		}
	}
}

func TestStatusString(t *testing.T) {
	testutil.AssertEqual(t, InProgress.String(), "in progress")
	testutil.AssertEqual(t, Checkmate.String(), "checkmate")
	testutil.AssertEqual(t, LeavesPlayerInCheck.String(), "LeavesPlayerInCheck")
	testutil.AssertFalse(t, Check.IsTerminal())
}
