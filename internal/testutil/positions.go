package testutil

// Well known positions used across the tests.
const (
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// KiwipeteFEN has castling on both wings, pins and en passant chances.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// RookEndgameFEN is full of discovered checks along the fifth rank.
	RookEndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// PromotionsFEN has White in check with pawns about to promote.
	PromotionsFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	// DiscoveredPromotionFEN allows a capture-promotion on c8.
	DiscoveredPromotionFEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// PerftPosition is a position with its published leaf counts; Nodes[i] is
// the count at depth i+1.
type PerftPosition struct {
	Name  string
	FEN   string
	Nodes []uint64
}

// PerftPositions lists positions whose counts are known.
var PerftPositions = []PerftPosition{
	{"start", StartFEN, []uint64{20, 400, 8902}},
	{"kiwipete", KiwipeteFEN, []uint64{48, 2039}},
	{"rook endgame", RookEndgameFEN, []uint64{14, 191, 2812}},
	{"promotions", PromotionsFEN, []uint64{6, 264}},
	{"discovered promotion", DiscoveredPromotionFEN, []uint64{44, 1486}},
}
