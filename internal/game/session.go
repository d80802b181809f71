// Package game drives a game of chess one move at a time on top of the
// rules engine. A Session keeps the boards played so far, which gives it
// undo and repetition counting.
package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Session is a game in progress. It is not safe for concurrent use.
type Session struct {
	boards    []*engine.Board
	moves     []engine.Move
	positions *hashing.PositionCounter
	promotion chess.Kind
}

// Option configures a Session.
type Option func(*Session)

// WithDefaultPromotion sets the kind Play promotes pawns to. Kinds a pawn
// cannot become are ignored.
func WithDefaultPromotion(kind chess.Kind) Option {
	return func(s *Session) {
		if kind.IsPromotionTarget() {
			s.promotion = kind
		}
	}
}

// NewSession starts a game from board.
func NewSession(board *engine.Board, opts ...Option) *Session {
	s := &Session{
		boards:    []*engine.Board{board},
		positions: hashing.NewPositionCounter(),
		promotion: chess.Queen,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.positions.Add(board)
	return s
}

// Replay starts a game from startFEN and plays moves given in coordinate
// form. A move that cannot be played is reported as a PositionError.
func Replay(startFEN string, moves []string, opts ...Option) (*Session, error) {
	board, err := engine.NewBoardFromFEN(startFEN)
	if err != nil {
		return nil, err
	}
	s := NewSession(board, opts...)
	for i, text := range moves {
		transition, err := s.PlayText(text)
		if err != nil {
			return nil, &errors.PositionError{Err: err, FEN: engine.BoardToFEN(s.Board()), PlyNum: i + 1, MoveText: text}
		}
		if !transition.Status.IsDone() {
			return nil, &errors.PositionError{
				Err:      errors.Wrap(errors.ErrIllegalMove, transition.Status.String()),
				FEN:      engine.BoardToFEN(s.Board()),
				PlyNum:   i + 1,
				MoveText: text,
			}
		}
	}
	return s, nil
}

// Board returns the current position.
func (s *Session) Board() *engine.Board {
	return s.boards[len(s.boards)-1]
}

// StartBoard returns the position the game started from.
func (s *Session) StartBoard() *engine.Board {
	return s.boards[0]
}

// History returns the moves played so far.
func (s *Session) History() []engine.Move {
	return append([]engine.Move(nil), s.moves...)
}

// MoveTexts returns the moves played so far in the form PlayText accepts.
func (s *Session) MoveTexts() []string {
	texts := make([]string, len(s.moves))
	for i, m := range s.moves {
		texts[i] = m.Coordinates()
	}
	return texts
}

// Play moves the piece on from to to. A promoting pawn becomes the
// session's default promotion kind. Rejections are reported in the status
// of the returned transition; NoMove is attempted when no move matches.
func (s *Session) Play(from, to chess.Coordinate) engine.MoveTransition {
	move := engine.FindMove(s.Board(), from, to)
	if move.IsPromotion() {
		move, _ = move.WithPromotion(s.promotion)
	}
	return s.attempt(move)
}

// PlayPromotion is like Play with an explicit promotion kind. It fails if
// the move is not a promotion or kind is not a valid promotion.
func (s *Session) PlayPromotion(from, to chess.Coordinate, kind chess.Kind) (engine.MoveTransition, error) {
	move := engine.FindMove(s.Board(), from, to)
	if move.IsNull() {
		return s.attempt(move), nil
	}
	move, err := move.WithPromotion(kind)
	if err != nil {
		return engine.MoveTransition{Board: s.Board(), Move: move, Status: engine.IllegalMove}, err
	}
	return s.attempt(move), nil
}

// PlayText plays a move written as in "e2e4" or "e7e8n". Text without a
// promotion letter promotes to the session's default kind.
func (s *Session) PlayText(text string) (engine.MoveTransition, error) {
	move, err := engine.ParseMove(s.Board(), text)
	if err != nil {
		return engine.MoveTransition{Board: s.Board(), Move: engine.NoMove, Status: engine.IllegalMove}, err
	}
	if len(text) == 4 && move.IsPromotion() {
		move, _ = move.WithPromotion(s.promotion)
	}
	return s.attempt(move), nil
}

func (s *Session) attempt(move engine.Move) engine.MoveTransition {
	transition := s.Board().CurrentPlayer().AttemptMove(move)
	if transition.Status.IsDone() {
		s.boards = append(s.boards, transition.Board)
		s.moves = append(s.moves, transition.Move)
		s.positions.Add(transition.Board)
	}
	return transition
}

// Undo takes back the last move. It returns false at the start of the game.
func (s *Session) Undo() bool {
	if len(s.moves) == 0 {
		return false
	}
	s.positions.Remove(s.Board())
	s.boards = s.boards[:len(s.boards)-1]
	s.moves = s.moves[:len(s.moves)-1]
	return true
}

// Status returns the state of the side to move.
func (s *Session) Status() engine.Status {
	return s.Board().CurrentPlayer().Status()
}

// Repetitions returns how many times the current position has occurred.
func (s *Session) Repetitions() int {
	return s.positions.Count(s.Board())
}

// Outcome describes whether and how a game has ended.
type Outcome struct {
	Status      engine.Status         `json:"status"`
	Draws       engine.DrawRuleResult `json:"draws"`
	Repetitions int                   `json:"repetitions"`
}

// ThreefoldRepetition returns true if a draw may be claimed by repetition.
func (o Outcome) ThreefoldRepetition() bool {
	return o.Repetitions >= 3
}

// IsOver returns true if the game has ended without needing a claim:
// mate, stalemate, dead position, the seventy-five move rule or fivefold
// repetition.
func (o Outcome) IsOver() bool {
	return o.Status.IsTerminal() ||
		o.Draws.InsufficientMaterial ||
		o.Draws.SeventyFiveMoveRule ||
		o.Repetitions >= 5
}

// Outcome returns the current status together with the draw rules.
func (s *Session) Outcome() Outcome {
	return Outcome{
		Status:      s.Status(),
		Draws:       engine.AnalyzeDrawRules(s.Board()),
		Repetitions: s.Repetitions(),
	}
}
