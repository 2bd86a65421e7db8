package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// MaxPerftDepth bounds the move tree depth accepted from the command line.
const MaxPerftDepth = 8

// PerftConfig holds settings for move tree counting.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 disables counting
	Depth int

	// Divide reports the count below each root move
	Divide bool

	// Workers is the number of goroutines counting root moves
	Workers int

	// Verify cross-checks counts against an independent move generator
	Verify bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
