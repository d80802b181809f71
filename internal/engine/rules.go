package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Half-move thresholds of the move-count draw rules.
const (
	FiftyMoveLimit       = 100
	SeventyFiveMoveLimit = 150
)

// DrawRuleResult contains the results of draw rule detection on one board.
type DrawRuleResult struct {
	// FiftyMoveRule is true once 50 moves (100 half-moves) have passed
	// without a pawn move or capture. A player may then claim a draw.
	FiftyMoveRule bool `json:"fiftyMoveRule"`

	// SeventyFiveMoveRule is true once 150 half-moves have passed without
	// a pawn move or capture. The game is then drawn automatically.
	SeventyFiveMoveRule bool `json:"seventyFiveMoveRule"`

	// InsufficientMaterial is true if neither side can possibly mate.
	InsufficientMaterial bool `json:"insufficientMaterial"`
}

// Any returns true if any draw rule applies.
func (r DrawRuleResult) Any() bool {
	return r.FiftyMoveRule || r.SeventyFiveMoveRule || r.InsufficientMaterial
}

// AnalyzeDrawRules checks the board's clocks and material.
func AnalyzeDrawRules(board *Board) DrawRuleResult {
	return DrawRuleResult{
		FiftyMoveRule:        board.halfmoveClock >= FiftyMoveLimit,
		SeventyFiveMoveRule:  board.halfmoveClock >= SeventyFiveMoveLimit,
		InsufficientMaterial: HasInsufficientMaterial(board),
	}
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (bishops on the same square colour)
func HasInsufficientMaterial(board *Board) bool {
	minors := map[chess.Colour][]chess.Piece{}
	for _, piece := range append(board.ActivePieces(chess.White), board.blackPieces...) {
		switch piece.Kind {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}
		minors[piece.Colour] = append(minors[piece.Colour], piece)
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		w, b := white[0], black[0]
		return w.Kind == chess.Bishop && b.Kind == chess.Bishop &&
			isLightSquare(w.Position) == isLightSquare(b.Position)
	}
	return false
}

// isLightSquare returns true if c is a light square. a8 (0) is light.
func isLightSquare(c chess.Coordinate) bool {
	return (c.Column()+c.Row())%2 == 0
}
