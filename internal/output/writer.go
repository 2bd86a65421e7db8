package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/game"
)

// StateWriter is the interface for writing game states to output.
// Different implementations handle different output formats (board, FEN, JSON).
type StateWriter interface {
	// WriteState writes the current state of a session.
	WriteState(s *game.Session) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.Config) StateWriter {
	switch cfg.Output.Format {
	case config.JSON:
		return NewJSONWriterSingle(w, cfg)
	case config.FEN:
		return &FENWriter{w: w}
	default:
		return NewBoardWriter(w, cfg)
	}
}

// BoardWriter writes states as ASCII board diagrams.
type BoardWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewBoardWriter creates a new board writer.
func NewBoardWriter(w io.Writer, cfg *config.Config) *BoardWriter {
	return &BoardWriter{w: w, cfg: cfg}
}

// WriteState writes the board diagram and status line.
func (bw *BoardWriter) WriteState(s *game.Session) error {
	if err := WriteBoard(bw.w, s, bw.cfg.Output.Coordinates); err != nil {
		return err
	}
	if bw.cfg.Verbosity > 1 {
		_, err := fmt.Fprintln(bw.w, s.FEN())
		return err
	}
	return nil
}

// Flush flushes the board writer (no-op as it writes immediately).
func (bw *BoardWriter) Flush() error {
	return nil
}

// Close closes the board writer.
func (bw *BoardWriter) Close() error {
	return nil
}

// FENWriter writes one FEN line per state.
type FENWriter struct {
	w io.Writer
}

// WriteState writes the session's FEN.
func (fw *FENWriter) WriteState(s *game.Session) error {
	_, err := fmt.Fprintln(fw.w, s.FEN())
	return err
}

// Flush is a no-op.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes states in JSON format.
// It buffers states and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	states []*JSONState
	single bool // If true, write each state immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches states and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		states: make([]*JSONState, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each state immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteState converts the session immediately, so later moves do not
// change buffered output.
func (jw *JSONWriter) WriteState(s *game.Session) error {
	js := StateToJSON(s, &jw.cfg.Output)
	if jw.single {
		return writeJSON(jw.w, js)
	}
	jw.states = append(jw.states, js)
	return nil
}

// Flush writes all buffered states as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.states) == 0 {
		return nil
	}
	err := writeJSON(jw.w, &JSONOutput{States: jw.states})

	// Clear buffer after writing
	jw.states = jw.states[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
