// chessboard plays moves on a chessboard, lists legal moves and counts move trees.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
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
		fmt.Printf("chessboard version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	moves, err := collectMoves(*moveList, flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	req := request{moves: moves, movesFor: *movesFor}
	if err := run(cfg, req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFilename = *outputFile
	cfg.OutputFile = file
}

// collectMoves gathers moves from the -moves flag followed by each input
// file in order. A file named "-" is read from stdin.
func collectMoves(inline string, files []string, stdin io.Reader) ([]string, error) {
	moves := strings.Fields(inline)
	for _, filename := range files {
		var content []byte
		var err error
		if filename == "-" {
			content, err = io.ReadAll(stdin)
		} else {
			content, err = os.ReadFile(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		}
		if err != nil {
			return nil, fmt.Errorf("reading moves from %s: %w", filename, err)
		}
		moves = append(moves, parseMoveText(string(content))...)
	}
	return moves, nil
}

// parseMoveText splits move text into moves, skipping "#" comments.
func parseMoveText(text string) []string {
	var moves []string
	for _, line := range strings.Split(text, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		moves = append(moves, strings.Fields(line)...)
	}
	return moves
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessboard [options] [move-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves on a chessboard and reports the resulting position.\n")
	fmt.Fprintf(os.Stderr, "The game starts from %s\n", engine.InitialFEN)
	fmt.Fprintf(os.Stderr, "unless -fen is given. Castling and draw rules are not supported.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are long algebraic: e2e4, g1f3, a7a8q (promotion letter n, b, r or q).\n")
}
