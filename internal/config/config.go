// Package config provides configuration for the chessboard commands.
package config

import (
	"io"
	"os"
)

// OutputFormat selects how positions are written.
type OutputFormat int

const (
	Board OutputFormat = iota // ASCII board diagram
	JSON                      // JSON state
	FEN                       // One FEN line per position
)

var formatNames = []string{"board", "json", "fen"}

// String returns the name of the format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	for i, name := range formatNames {
		if s == name {
			return OutputFormat(i), true
		}
	}
	return Board, false
}

// Config holds the command-line program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Grouped settings
	Output OutputConfig
	Perft  PerftConfig

	// Game setup
	StartFEN  string
	AutoReset bool

	// File handling
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     *NewOutputConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer that receives program output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer that receives diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the grouped settings.
func (c *Config) Validate() error {
	return c.Perft.Validate()
}
