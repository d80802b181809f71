package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MoveStatus is the outcome of attempting a move.
type MoveStatus int

const (
	// Done means the move was played and MoveTransition.Board is the new position.
	Done MoveStatus = iota
	// IllegalMove means the move is not among the player's moves.
	IllegalMove
	// LeavesPlayerInCheck means the move would leave the mover's king attacked.
	LeavesPlayerInCheck
)

// String returns the name of the status.
func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "Done"
	case IllegalMove:
		return "IllegalMove"
	case LeavesPlayerInCheck:
		return "LeavesPlayerInCheck"
	}
	return "Unknown"
}

// IsDone returns true if the move was played.
func (s MoveStatus) IsDone() bool {
	return s == Done
}

// MoveTransition records the result of Player.AttemptMove. Board is the new
// position when Status is Done and the unchanged position otherwise.
type MoveTransition struct {
	Board  *Board
	Move   Move
	Status MoveStatus
}

// Player is one side of a board: its king, its moves and whether it is in check.
type Player struct {
	colour     chess.Colour
	board      *Board
	king       chess.Piece
	legalMoves []Move
	inCheck    bool
}

// newPlayer wraps one colour of a board under construction. moves and
// opponentMoves are the piece moves of each side; castles are added here.
func newPlayer(board *Board, colour chess.Colour, moves, opponentMoves []Move) *Player {
	p := &Player{
		colour: colour,
		board:  board,
		king:   establishKing(board, colour),
	}
	p.inCheck = len(attacksOn(p.king.Position, opponentMoves)) > 0

	p.legalMoves = append(p.legalMoves, moves...)
	p.legalMoves = append(p.legalMoves, p.calculateKingCastles(moves, opponentMoves)...)
	return p
}

// establishKing finds the king of colour. Builder.Build has already counted
// kings, so a miss means the board was assembled outside the builder.
func establishKing(board *Board, colour chess.Colour) chess.Piece {
	for _, piece := range chess.Choose(colour, board.whitePieces, board.blackPieces) {
		if piece.Kind == chess.King {
			return piece
		}
	}
	panic("engine: board has no " + colour.String() + " king")
}

// Colour returns the player's colour.
func (p *Player) Colour() chess.Colour {
	return p.colour
}

// King returns the player's king.
func (p *Player) King() chess.Piece {
	return p.king
}

// ActivePieces returns a copy of the player's pieces.
func (p *Player) ActivePieces() []chess.Piece {
	return p.board.ActivePieces(p.colour)
}

// Opponent returns the other player of the same board.
func (p *Player) Opponent() *Player {
	return p.board.Player(p.colour.Opposite())
}

// LegalMoves returns a copy of the player's moves, castles included. Moves
// that would leave the king attacked are still listed; AttemptMove rejects them.
func (p *Player) LegalMoves() []Move {
	return append([]Move(nil), p.legalMoves...)
}

// IsMoveLegal returns true if move is one of the player's moves.
func (p *Player) IsMoveLegal(move Move) bool {
	_, ok := p.resolve(move)
	return ok
}

// resolve finds the player's own copy of move, carrying over the caller's
// promotion choice, so a move built on another board is applied to this one.
func (p *Player) resolve(move Move) (Move, bool) {
	for _, m := range p.legalMoves {
		if m.Equal(move) {
			m.promotion = move.promotion
			return m, true
		}
	}
	return Move{}, false
}

// IsInCheck returns true if an opposing move lands on the king.
func (p *Player) IsInCheck() bool {
	return p.inCheck
}

// IsInCheckmate returns true if the king is in check and no move gets it out.
func (p *Player) IsInCheckmate() bool {
	return p.inCheck && !p.HasEscapeMoves()
}

// IsInStalemate returns true if the king is not in check but every move is rejected.
func (p *Player) IsInStalemate() bool {
	return !p.inCheck && !p.HasEscapeMoves()
}

// HasEscapeMoves returns true if at least one move can be played.
func (p *Player) HasEscapeMoves() bool {
	for _, move := range p.legalMoves {
		if p.AttemptMove(move).Status.IsDone() {
			return true
		}
	}
	return false
}

// AttemptMove plays move if it is one of the player's moves and does not
// leave the player's king attacked. Rejections are reported in the status
// and carry the unchanged board.
func (p *Player) AttemptMove(move Move) MoveTransition {
	own, ok := p.resolve(move)
	if !ok {
		return MoveTransition{Board: p.board, Move: move, Status: IllegalMove}
	}
	move = own

	next, err := move.Apply()
	if err != nil {
		// Only a position that already allows capturing a king gets here.
		return MoveTransition{Board: p.board, Move: move, Status: IllegalMove}
	}

	mover := next.Player(p.colour)
	if len(attacksOn(mover.king.Position, next.Player(p.colour.Opposite()).legalMoves)) > 0 {
		return MoveTransition{Board: p.board, Move: move, Status: LeavesPlayerInCheck}
	}
	return MoveTransition{Board: next, Move: move, Status: Done}
}

// DoneMoves returns the moves AttemptMove would accept.
func (p *Player) DoneMoves() []Move {
	var moves []Move
	for _, move := range p.legalMoves {
		if p.AttemptMove(move).Status.IsDone() {
			moves = append(moves, move)
		}
	}
	return moves
}
