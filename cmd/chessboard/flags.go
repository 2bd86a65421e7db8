package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chessboard-go/internal/config"
)

var (
	// Game setup
	startFEN  = flag.String("fen", "", "Starting position in FEN (default: initial position)")
	moveList  = flag.String("moves", "", "Moves to play in long algebraic form, e.g. \"e2e4 d7d5\"")
	movesFor  = flag.String("moves-for", "", "List the legal moves of the piece on this square")
	autoReset = flag.Bool("auto-reset", false, "Start a new game as soon as one ends")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	fenOutput  = flag.Bool("F", false, "Output a FEN line instead of a board diagram")
	showMoves  = flag.Bool("showmoves", false, "Include legal moves in JSON output")
	noHistory  = flag.Bool("nohistory", false, "Omit the move history from JSON output")
	noCoords   = flag.Bool("nocoords", false, "Omit file and rank labels from the board diagram")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count the legal move tree to depth N")
	divide     = flag.Bool("divide", false, "Show perft node counts per root move")
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	verify     = flag.Bool("verify", false, "Cross-check moves and perft counts with an independent move generator")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	verbose = flag.Bool("verbose", false, "Log every move and print FEN under the board")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyGameFlags configures the starting position.
func applyGameFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.AutoReset = *autoReset
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) {
	switch {
	case *jsonOutput:
		cfg.Output.Format = config.JSON
	case *fenOutput:
		cfg.Output.Format = config.FEN
	default:
		cfg.Output.Format = config.Board
	}
	cfg.Output.ShowMoves = *showMoves
	cfg.Output.ShowHistory = !*noHistory
	cfg.Output.Coordinates = !*noCoords
}

// applyPerftFlags configures move tree counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Verify = *verify
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	} else {
		cfg.Perft.Workers = runtime.NumCPU()
	}
}
