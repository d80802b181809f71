// chessrules plays, checks and counts chess positions under the full rules
// of the game.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/perft"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := loadConfig()
	applyFlags(cfg, setFlags(flag.CommandLine))
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	logClose := setupLogFile(cfg)
	outClose := setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg, actionsFromFlags())
	stop()

	if err = closeFiles(err, outClose, logClose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig returns the defaults or the -config file read over them.
func loadConfig() *config.Config {
	if *configFile == "" {
		return config.NewConfig()
	}
	cfg, err := config.LoadFile(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// closeFiles closes the output and log files after run. A failed close of
// the output file is reported unless run already failed; the log file's
// close error has nowhere left to go.
func closeFiles(runErr error, outClose, logClose func() error) error {
	if err := outClose(); err != nil && runErr == nil {
		runErr = fmt.Errorf("closing output file: %w", err)
	}
	_ = logClose()
	return runErr
}

// noClose is returned for streams the program did not open.
func noClose() error { return nil }

// setupLogFile points cfg's log at the -log file, appending to it. It
// returns the function that closes the file.
func setupLogFile(cfg *config.Config) func() error {
	if *logFile == "" {
		return noClose
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	config.From(cfg).WithLog(file)
	return file.Close
}

// setupOutputFile points cfg's output at the -o file. It returns the
// function that closes the file.
func setupOutputFile(cfg *config.Config) func() error {
	if *outputFile == "" {
		return noClose
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	config.From(cfg).WithOutput(file)
	return file.Close
}

// logger writes diagnostics at or below the configured verbosity.
type logger struct {
	*log.Logger
	verbosity int
}

func newLogger(cfg *config.Config) *logger {
	w := cfg.LogFile
	if w == nil {
		w = io.Discard
	}
	return &logger{
		Logger:    log.New(w, "chessrules: ", 0),
		verbosity: cfg.Verbosity,
	}
}

// logf logs when the verbosity is at least level.
func (l *logger) logf(level int, format string, args ...interface{}) {
	if l.verbosity >= level {
		l.Printf(format, args...)
	}
}

// run carries out the requested actions and writes the reports to
// cfg.OutputFile.
func run(ctx context.Context, cfg *config.Config, a actions) error {
	lg := newLogger(cfg)
	writer := output.NewWriter(cfg.OutputFile, cfg)

	var store *storage.Store
	if a.needsStore() {
		var err error
		if store, err = openStore(cfg, lg); err != nil {
			return err
		}
		defer store.Close() //nolint:errcheck // read-mostly store, close errors are not actionable
	}

	if a.remove != "" {
		if err := store.DeleteGame(a.remove); err != nil {
			return err
		}
		lg.logf(1, "deleted game %q", a.remove)
	}

	if a.list {
		records, err := store.ListGames()
		if err != nil {
			return err
		}
		lg.logf(2, "%d saved games", len(records))
		if err := writer.WriteGames(records); err != nil {
			return err
		}
		if a.fen == "" && a.resume == "" && len(a.moves) == 0 && !a.perft {
			return writer.Close()
		}
	} else if a.remove != "" && a.fen == "" && a.resume == "" && len(a.moves) == 0 && !a.perft {
		return writer.Close()
	}

	session, err := startSession(cfg, a, store, lg)
	if err != nil {
		return err
	}

	for i, text := range a.moves {
		transition, err := session.PlayText(text)
		if err == nil && !transition.Status.IsDone() {
			err = errors.Wrap(errors.ErrIllegalMove, transition.Status.String())
		}
		if err != nil {
			return &errors.PositionError{
				Err:      err,
				FEN:      engine.BoardToFEN(session.Board()),
				PlyNum:   len(session.History()) + 1,
				MoveText: a.moves[i],
			}
		}
		lg.logf(2, "played %s: %s", transition.Move, output.Summary(session))
	}

	if a.save != "" {
		record, err := store.SaveGame(a.save, session)
		if err != nil {
			return err
		}
		lg.logf(1, "saved game %q (%d plies, %s)", record.ID, len(record.Moves), record.Status)
	}

	if a.perft {
		result, err := runPerft(ctx, cfg, session.Board(), a.divide)
		if err != nil {
			return err
		}
		lg.logf(1, "perft(%d) = %d (%d workers)", result.Depth, result.Nodes, result.Workers)
		if err := writer.WritePerft(result); err != nil {
			return err
		}
	} else if err := writer.WritePosition(session); err != nil {
		return err
	}

	return writer.Close()
}

// startSession resumes a saved game or starts one from the -fen position.
func startSession(cfg *config.Config, a actions, store *storage.Store, lg *logger) (*game.Session, error) {
	opts := []game.Option{game.WithDefaultPromotion(cfg.Play.PromotionKind())}

	if a.resume != "" {
		session, err := store.LoadGame(a.resume, opts...)
		if err != nil {
			return nil, err
		}
		lg.logf(1, "resumed game %q: %s", a.resume, output.Summary(session))
		return session, nil
	}

	fen := a.fen
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return game.NewSession(board, opts...), nil
}

func openStore(cfg *config.Config, lg *logger) (*storage.Store, error) {
	dir := cfg.Storage.DataDir
	if dir == "" {
		var err error
		if dir, err = storage.DefaultDataDir(); err != nil {
			return nil, err
		}
	}
	lg.logf(2, "game store: %s", dir)
	return storage.Open(dir)
}

// runPerft counts the nodes below board. Without divide the per-move
// entries are dropped.
func runPerft(ctx context.Context, cfg *config.Config, board *engine.Board, divide bool) (perft.Result, error) {
	result, err := perft.Divide(ctx, board, cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return perft.Result{}, err
	}
	if !divide {
		result.Entries = nil
	}
	return result, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Shows the legal moves and status of a chess position, plays moves,\n")
	fmt.Fprintf(os.Stderr, "counts move trees and keeps saved games.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessrules -play 'e2e4 e7e5 g1f3'\n")
	fmt.Fprintf(os.Stderr, "  chessrules -fen '%s' -perft 3 -divide\n", engine.InitialFEN)
	fmt.Fprintf(os.Stderr, "  chessrules -play e2e4 -save casual && chessrules -resume casual -play e7e5\n")
}
