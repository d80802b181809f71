// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position
	fenString = flag.String("fen", "", "Start from this FEN position (default: standard position)")
	playMoves = flag.String("play", "", "Moves to play in from-to form, separated by spaces or commas (e.g. 'e2e4 e7e5 e1g1')")
	promote   = flag.String("promote", "", "Piece pawns promote to when a move does not name one: q, r, b or n")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to this depth (0 = off)")
	divide     = flag.Bool("divide", false, "With -perft, list the node count below each root move")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = one per CPU core)")

	// Saved games
	dataDir    = flag.String("db", "", "Saved game directory (default: platform data directory)")
	saveGame   = flag.String("save", "", "Save the game under this id")
	resumeGame = flag.String("resume", "", "Resume the saved game with this id")
	deleteGame = flag.String("delete", "", "Delete the saved game with this id")
	listGames  = flag.Bool("list", false, "List saved games")

	// Output
	configFile = flag.String("config", "", "YAML configuration file")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	noBoard    = flag.Bool("noboard", false, "Don't draw the board")
	noMoves    = flag.Bool("nomoves", false, "Don't list legal moves")
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("log", "", "Write diagnostics to log file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=nothing, 1=summary, 2=running commentary")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags copies the explicitly set flags into cfg, so they override
// values from a configuration file.
func applyFlags(cfg *config.Config, set map[string]bool) {
	b := config.From(cfg)
	if set["json"] {
		b.WithJSONOutput(*jsonOutput)
	}
	if set["noboard"] {
		b.WithBoard(!*noBoard)
	}
	if set["nomoves"] {
		b.WithMoveList(!*noMoves)
	}
	depth, n := cfg.Perft.Depth, cfg.Perft.Workers
	if set["perft"] && *perftDepth > 0 {
		depth = *perftDepth
	}
	if set["workers"] && *workers > 0 {
		n = *workers
	}
	b.WithPerft(depth, n)
	if set["db"] {
		b.WithDataDir(*dataDir)
	}
	if set["promote"] {
		b.WithPromotion(*promote)
	}
	if set["v"] {
		b.WithVerbosity(*verbosity)
	}
}

// actions is what the command was asked to do, gathered from the flags.
type actions struct {
	fen    string
	moves  []string
	perft  bool
	divide bool
	save   string
	resume string
	remove string
	list   bool
}

func actionsFromFlags() actions {
	return actions{
		fen:    *fenString,
		moves:  splitMoves(*playMoves),
		perft:  *perftDepth > 0,
		divide: *divide,
		save:   *saveGame,
		resume: *resumeGame,
		remove: *deleteGame,
		list:   *listGames,
	}
}

// splitMoves splits a move list on spaces and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// needsStore returns true if any action uses saved games.
func (a actions) needsStore() bool {
	return a.save != "" || a.resume != "" || a.remove != "" || a.list
}
