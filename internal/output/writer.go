// Package output renders positions, perft results and saved games as text
// or JSON.
package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/perft"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WritePosition writes a report of the session's current position.
	WritePosition(s *game.Session) error

	// WritePerft writes a divide result.
	WritePerft(result perft.Result) error

	// WriteGames writes a list of saved games.
	WriteGames(records []storage.Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w   *errWriter
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   &errWriter{w: w},
		cfg: cfg,
	}
}

// WritePosition writes a position report.
func (tw *TextWriter) WritePosition(s *game.Session) error {
	OutputPosition(s, tw.cfg, tw.w)
	return tw.w.err
}

// WritePerft writes a divide result.
func (tw *TextWriter) WritePerft(result perft.Result) error {
	OutputPerft(result, tw.w)
	return tw.w.err
}

// WriteGames writes a list of saved games.
func (tw *TextWriter) WriteGames(records []storage.Record) error {
	OutputGames(records, tw.w)
	return tw.w.err
}

// Flush is a no-op for text as it writes immediately.
func (tw *TextWriter) Flush() error {
	return tw.w.err
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return tw.Flush()
}

// errWriter remembers the first write error so the formatting helpers can
// ignore it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// JSONOutput holds everything a batch JSON writer has collected.
type JSONOutput struct {
	Positions []*JSONPosition   `json:"positions,omitempty"`
	Perft     []perft.Result    `json:"perft,omitempty"`
	Games     *[]storage.Record `json:"games,omitempty"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as one document on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	output JSONOutput
}

// NewJSONWriter creates a JSON writer that batches reports and writes them
// as one object on Close.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WritePosition buffers a position report.
func (jw *JSONWriter) WritePosition(s *game.Session) error {
	jw.output.Positions = append(jw.output.Positions, PositionToJSON(s, jw.cfg))
	return nil
}

// WritePerft buffers a divide result.
func (jw *JSONWriter) WritePerft(result perft.Result) error {
	jw.output.Perft = append(jw.output.Perft, result)
	return nil
}

// WriteGames buffers a game list. An empty list is written as [].
func (jw *JSONWriter) WriteGames(records []storage.Record) error {
	if jw.output.Games == nil {
		jw.output.Games = &[]storage.Record{}
	}
	*jw.output.Games = append(*jw.output.Games, records...)
	return nil
}

// Flush writes all buffered reports as one JSON object.
func (jw *JSONWriter) Flush() error {
	if jw.empty() {
		return nil
	}
	err := jw.encode(&jw.output)

	// Clear buffer after writing
	jw.output = JSONOutput{}

	return err
}

func (jw *JSONWriter) empty() bool {
	return len(jw.output.Positions) == 0 && len(jw.output.Perft) == 0 && jw.output.Games == nil
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
