package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/game"
	"github.com/lgbarn/chessboard-go/internal/oracle"
	"github.com/lgbarn/chessboard-go/internal/output"
	"github.com/lgbarn/chessboard-go/internal/worker"
)

// request describes what to do after the configuration is applied.
type request struct {
	moves    []string // long algebraic moves to play in order
	movesFor string   // square whose legal moves are listed instead of the board
}

// run sets up the game, plays the requested moves and writes the result.
func run(cfg *config.Config, req request) error {
	session, err := newSession(cfg)
	if err != nil {
		return err
	}
	start := session.FEN()

	reset := false
	for _, text := range req.moves {
		out, err := session.PlayText(text)
		if err != nil {
			return err
		}
		reset = reset || out.Reset
		if cfg.Verbosity > 0 && out.Status.Terminal() {
			fmt.Fprintf(cfg.LogFile, "Game over after ply %d: %s\n", out.Ply, output.StatusLine(session))
		}
	}

	if cfg.Perft.Verify && len(req.moves) > 0 {
		if err := verifyReplay(cfg, session, start, req.moves, reset); err != nil {
			return err
		}
	}

	if cfg.Perft.Depth > 0 {
		return runPerft(cfg, session)
	}

	if req.movesFor != "" {
		return writeMovesFor(cfg.OutputFile, session, req.movesFor)
	}

	writer := output.NewWriter(cfg.OutputFile, cfg)
	if err := writer.WriteState(session); err != nil {
		return err
	}
	if cfg.Verbosity > 0 && len(req.moves) > 0 {
		fmt.Fprintf(cfg.LogFile, "%d move(s) played.\n", len(req.moves))
	}
	return writer.Close()
}

// newSession creates the game from the configured start position.
func newSession(cfg *config.Config) (*game.Session, error) {
	log := io.Discard
	if cfg.Verbosity > 1 {
		log = cfg.LogFile
	}
	opts := []game.Option{game.WithAutoReset(cfg.AutoReset), game.WithLog(log)}
	if cfg.StartFEN == "" {
		return game.New(opts...), nil
	}
	return game.NewFromFEN(cfg.StartFEN, opts...)
}

// writeMovesFor lists the legal moves of the piece on the named square.
func writeMovesFor(w io.Writer, session *game.Session, name string) error {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		return err
	}
	moves, err := session.Select(sq)
	if err != nil {
		return err
	}
	return output.WriteMoves(w, sq, moves)
}

// verifyReplay replays the moves with the oracle and compares the final
// piece placement. Finished games are skipped because the session removes
// kings when a game ends.
func verifyReplay(cfg *config.Config, session *game.Session, start string, moves []string, reset bool) error {
	if reset || session.Status().Terminal() {
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "Replay check skipped: game ended.\n")
		}
		return nil
	}
	want, err := oracle.Replay(start, moves)
	if err != nil {
		return fmt.Errorf("oracle replay: %w", err)
	}
	got := placement(session.FEN())
	if got != want {
		return fmt.Errorf("replay mismatch: engine %s, oracle %s", got, want)
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "Replay check passed.\n")
	}
	return nil
}

// placement returns the piece placement field of a FEN string.
func placement(fen string) string {
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		return fen[:i]
	}
	return fen
}

// runPerft counts the move tree below the current position.
func runPerft(cfg *config.Config, session *game.Session) error {
	fen := session.FEN()
	depth := cfg.Perft.Depth

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	began := time.Now()
	entries, err := worker.DivideContext(ctx, session.Engine().Position(), session.Turn(), depth, cfg.Perft.Workers)
	if err != nil {
		return fmt.Errorf("perft(%d) interrupted after %d root move(s): %w", depth, len(entries), err)
	}
	nodes := worker.Total(entries)
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "perft(%d) = %d in %s with %d worker(s)\n",
			depth, nodes, time.Since(began).Round(time.Millisecond), cfg.Perft.Workers)
	}

	if cfg.Perft.Verify {
		if err := verifyDivide(fen, depth, entries); err != nil {
			return err
		}
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "Perft check passed.\n")
		}
	}

	switch {
	case cfg.Output.Format == config.JSON:
		return output.OutputDivideJSON(cfg.OutputFile, fen, depth, entries)
	case cfg.Perft.Divide:
		return output.WriteDivide(cfg.OutputFile, entries)
	default:
		_, err := fmt.Fprintf(cfg.OutputFile, "%d\n", nodes)
		return err
	}
}

// verifyDivide compares per-move counts with the oracle.
func verifyDivide(fen string, depth int, entries []engine.DivideEntry) error {
	want, err := oracle.Divide(fen, depth)
	if err != nil {
		return fmt.Errorf("oracle divide: %w", err)
	}
	if len(want) != len(entries) {
		return fmt.Errorf("perft mismatch: engine has %d root moves, oracle %d", len(entries), len(want))
	}
	for _, e := range entries {
		if n, ok := want[e.Move.String()]; !ok || n != e.Nodes {
			return fmt.Errorf("perft mismatch at %s: engine %d, oracle %d", e.Move, e.Nodes, n)
		}
	}
	return nil
}
