package engine

import (
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// oraclePositions are cross-checked against an independent move generator.
var oraclePositions = []string{
	InitialFEN,
	testutil.KiwipeteFEN,
	testutil.RookEndgameFEN,
	testutil.PromotionsFEN,
	testutil.DiscoveredPromotionFEN,
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
}

// oracleMoves returns the from-to names of the oracle's legal moves.
// Promotions to different kinds share a name and are listed once.
func oracleMoves(t *testing.T, fen string) ([]string, notnil.Method) {
	t.Helper()
	opt, err := notnil.FEN(fen)
	if err != nil {
		t.Fatalf("oracle rejected %q: %v", fen, err)
	}
	game := notnil.NewGame(opt)

	seen := map[string]bool{}
	var names []string
	for _, m := range game.ValidMoves() {
		name := m.S1().String() + m.S2().String()
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, game.Position().Status()
}

func compareWithOracle(t *testing.T, board *Board) {
	t.Helper()
	fen := BoardToFEN(board)
	want, method := oracleMoves(t, fen)

	player := board.CurrentPlayer()
	testutil.AssertSameSet(t, moveNames(player.DoneMoves()), want, fen)

	testutil.AssertEqual(t, player.IsInCheckmate(), method == notnil.Checkmate, fen+" checkmate")
	testutil.AssertEqual(t, player.IsInStalemate(), method == notnil.Stalemate, fen+" stalemate")
}

func TestLegalMovesMatchOracle(t *testing.T) {
	for _, fen := range oraclePositions {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			compareWithOracle(t, MustFEN(fen))
		})
	}
}

// TestGameWalkMatchesOracle plays deterministic games from each position
// and compares the legal move set after every ply.
func TestGameWalkMatchesOracle(t *testing.T) {
	plies := 40
	if testing.Short() {
		plies = 10
	}

	for i, fen := range oraclePositions {
		i, fen := i, fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			board := MustFEN(fen)
			for ply := 0; ply < plies; ply++ {
				compareWithOracle(t, board)
				done := board.CurrentPlayer().DoneMoves()
				if len(done) == 0 {
					return
				}
				pick := done[(ply*13+i*5+3)%len(done)]
				board = board.CurrentPlayer().AttemptMove(pick).Board
			}
		})
	}
}

func TestMateStatusMatchesOracle(t *testing.T) {
	for _, fen := range []string{
		"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"k7/P7/1K6/8/8/8/8/8 b - - 0 1",
		"6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	} {
		t.Run(fen, func(t *testing.T) {
			compareWithOracle(t, MustFEN(fen))
		})
	}
}
