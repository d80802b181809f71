package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/perft"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

// OutputWriter wraps text at a maximum line length.
type OutputWriter struct {
	w             io.Writer
	maxLineLength int
	lineLength    int
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, preceded by a space unless it starts a line.
func (o *OutputWriter) Write(s string) {
	if o.lineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
		o.NewLine()
	}
	if o.lineLength > 0 {
		fmt.Fprint(o.w, " ")
		o.lineLength++
	}
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
}

// maxLineLength is the width move lists are wrapped at.
const maxLineLength = 79

// OutputPosition writes a text report of the session's current position.
func OutputPosition(s *game.Session, cfg *config.Config, w io.Writer) {
	board := s.Board()
	outcome := s.Outcome()

	if cfg.Output.ShowBoard {
		fmt.Fprint(w, board)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "FEN: %s\n", engine.BoardToFEN(board))
	fmt.Fprintf(w, "Side to move: %s\n", board.SideToMove())
	fmt.Fprintf(w, "Status: %s\n", outcome.Status)

	if history := s.MoveTexts(); len(history) > 0 {
		outputWords(w, "Played:", history)
	}
	if cfg.Output.ShowMoves {
		moves := board.CurrentPlayer().DoneMoves()
		names := make([]string, len(moves))
		for i, m := range moves {
			names[i] = m.String()
		}
		sort.Strings(names)
		outputWords(w, fmt.Sprintf("Moves (%d):", len(names)), names)
	}
	if outcome.Repetitions > 1 {
		fmt.Fprintf(w, "Repetitions: %d\n", outcome.Repetitions)
	}
	for _, draw := range drawNotes(outcome) {
		fmt.Fprintf(w, "Draw: %s\n", draw)
	}
}

func outputWords(w io.Writer, label string, words []string) {
	ow := NewOutputWriter(w, maxLineLength)
	ow.Write(label)
	for _, word := range words {
		ow.Write(word)
	}
	ow.NewLine()
}

func drawNotes(o game.Outcome) []string {
	var notes []string
	if o.Draws.InsufficientMaterial {
		notes = append(notes, "insufficient material")
	}
	switch {
	case o.Draws.SeventyFiveMoveRule:
		notes = append(notes, "seventy-five move rule")
	case o.Draws.FiftyMoveRule:
		notes = append(notes, "fifty move rule may be claimed")
	}
	switch {
	case o.Repetitions >= 5:
		notes = append(notes, "fivefold repetition")
	case o.ThreefoldRepetition():
		notes = append(notes, "threefold repetition may be claimed")
	}
	return notes
}

// OutputPerft writes a divide result, one root move per line.
func OutputPerft(result perft.Result, w io.Writer) {
	for _, entry := range result.Entries {
		fmt.Fprintf(w, "%s: %d\n", entry.Move, entry.Nodes)
	}
	fmt.Fprintf(w, "\nNodes searched: %d (depth %d)\n", result.Nodes, result.Depth)
}

// OutputGames writes one line per stored game.
func OutputGames(records []storage.Record, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No saved games.")
		return
	}
	for _, r := range records {
		fmt.Fprintf(w, "%-16s %-12s %3d plies  %s  %s\n",
			r.ID, r.Status, len(r.Moves), r.Updated.Format("2006-01-02 15:04"), r.FEN)
	}
}

// Summary returns a one-line description of a session, as used in logs.
func Summary(s *game.Session) string {
	plies := fmt.Sprintf("%d plies", len(s.History()))
	if len(s.History()) == 1 {
		plies = "1 ply"
	}
	return strings.Join([]string{
		plies,
		s.Board().SideToMove().String() + " to move",
		s.Status().String(),
	}, ", ")
}
