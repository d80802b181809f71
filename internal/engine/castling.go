package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleSide describes one castle for one colour on the fixed home squares.
type castleSide struct {
	class   MoveClass
	king    chess.Coordinate   // king's home square
	rook    chess.Coordinate   // rook's home square
	kingTo  chess.Coordinate   // where the king lands
	rookTo  chess.Coordinate   // where the rook lands
	between []chess.Coordinate // squares that must be empty
	crossed []chess.Coordinate // squares the king passes that must not be attacked
}

// castleSides lists the king-side castle before the queen-side one per colour.
var castleSides = map[chess.Colour][]castleSide{
	chess.White: {
		{class: KingsideCastle, king: 60, rook: 63, kingTo: 62, rookTo: 61,
			between: []chess.Coordinate{61, 62}, crossed: []chess.Coordinate{61, 62}},
		{class: QueensideCastle, king: 60, rook: 56, kingTo: 58, rookTo: 59,
			between: []chess.Coordinate{59, 58, 57}, crossed: []chess.Coordinate{59, 58}},
	},
	chess.Black: {
		{class: KingsideCastle, king: 4, rook: 7, kingTo: 6, rookTo: 5,
			between: []chess.Coordinate{5, 6}, crossed: []chess.Coordinate{5, 6}},
		{class: QueensideCastle, king: 4, rook: 0, kingTo: 2, rookTo: 3,
			between: []chess.Coordinate{3, 2, 1}, crossed: []chess.Coordinate{3, 2}},
	},
}

// calculateKingCastles returns the castles available to the player. A king
// that has moved or is in check cannot castle; each side additionally needs
// its unmoved rook, empty squares in between and no attack on the squares
// the king crosses.
func (p *Player) calculateKingCastles(moves, opponentMoves []Move) []Move {
	if p.king.Moved || p.inCheck {
		return nil
	}

	attacked := attackedSquares(opponentMoves, p.board.ActivePieces(p.colour.Opposite()))

	var castles []Move
	for _, side := range castleSides[p.colour] {
		if p.king.Position != side.king {
			continue
		}
		rook, ok := p.board.square(side.rook).Piece()
		if !ok || rook.Kind != chess.Rook || rook.Colour != p.colour || rook.Moved {
			continue
		}
		if !allEmpty(p.board, side.between) || anyAttacked(attacked, side.crossed) {
			continue
		}
		castles = append(castles, newCastle(side.class, p.board, p.king, side.kingTo, rook, side.rookTo))
	}
	return castles
}

func allEmpty(board *Board, squares []chess.Coordinate) bool {
	for _, c := range squares {
		if board.square(c).IsOccupied() {
			return false
		}
	}
	return true
}

func anyAttacked(attacked [chess.NumSquares]bool, squares []chess.Coordinate) bool {
	for _, c := range squares {
		if attacked[c] {
			return true
		}
	}
	return false
}
