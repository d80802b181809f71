package output

import (
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// JSONPosition represents a position report in JSON format.
type JSONPosition struct {
	FEN         string                 `json:"fen"`
	SideToMove  string                 `json:"sideToMove"` // "white" or "black"
	Status      string                 `json:"status"`
	InCheck     bool                   `json:"inCheck"`
	Castling    string                 `json:"castling"`
	EnPassant   string                 `json:"enPassant,omitempty"`
	Board       []string               `json:"board,omitempty"`
	Moves       []JSONMove             `json:"moves,omitempty"`
	History     []string               `json:"history,omitempty"`
	Repetitions int                    `json:"repetitions"`
	Draws       *engine.DrawRuleResult `json:"draws,omitempty"`
	GameOver    bool                   `json:"gameOver"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	UCI       string `json:"uci"`
	Text      string `json:"text"`
	Class     string `json:"class"`
	Piece     string `json:"piece"`
	From      string `json:"from"`
	To        string `json:"to"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Rook      string `json:"rook,omitempty"` // castle rook's from-to, e.g. "h1f1"
}

// PositionToJSON converts the current position of a session to JSON form.
func PositionToJSON(s *game.Session, cfg *config.Config) *JSONPosition {
	board := s.Board()
	player := board.CurrentPlayer()
	outcome := s.Outcome()

	jp := &JSONPosition{
		FEN:         engine.BoardToFEN(board),
		SideToMove:  colorName(board.SideToMove()),
		Status:      outcome.Status.String(),
		InCheck:     player.IsInCheck(),
		Castling:    engine.CastlingRights(board),
		History:     s.MoveTexts(),
		Repetitions: outcome.Repetitions,
		GameOver:    outcome.IsOver(),
	}
	if target := board.EnPassantTarget(); target.IsValid() {
		jp.EnPassant = target.String()
	}
	if outcome.Draws.Any() {
		draws := outcome.Draws
		jp.Draws = &draws
	}
	if cfg.Output.ShowBoard {
		jp.Board = boardRows(board)
	}
	if cfg.Output.ShowMoves {
		jp.Moves = convertMoves(player.DoneMoves())
	}
	return jp
}

// boardRows returns the diagram one row per entry, eighth rank first.
func boardRows(board *engine.Board) []string {
	return strings.Split(strings.TrimRight(board.String(), "\n"), "\n")
}

// convertMoves converts moves sorted by their coordinate text.
func convertMoves(moves []engine.Move) []JSONMove {
	jm := make([]JSONMove, 0, len(moves))
	for _, m := range moves {
		jm = append(jm, convertSingleMove(m))
	}
	sort.Slice(jm, func(i, j int) bool { return jm[i].UCI < jm[j].UCI })
	return jm
}

func convertSingleMove(m engine.Move) JSONMove {
	jm := JSONMove{
		UCI:   m.Coordinates(),
		Text:  m.String(),
		Class: m.Class().String(),
		Piece: pieceTypeName(m.MovedPiece()),
		From:  m.From().String(),
		To:    m.To().String(),
	}
	if captured, ok := m.CapturedPiece(); ok {
		jm.Captured = pieceTypeName(captured)
	}
	if m.IsPromotion() {
		jm.Promotion = strings.ToLower(m.Promotion().String())
	}
	if rook, to, ok := m.CastleRook(); ok {
		jm.Rook = rook.Position.String() + to.String()
	}
	return jm
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceTypeName(p chess.Piece) string {
	return strings.ToLower(p.Kind.String())
}
