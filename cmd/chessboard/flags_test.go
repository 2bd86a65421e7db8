package main

import (
	"runtime"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyOutputFlags(t *testing.T) {
	t.Run("jsonOutput sets JSON", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreBool(fenOutput, true)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.JSON {
			t.Errorf("Format = %v; want JSON", cfg.Output.Format)
		}
	})

	t.Run("fenOutput sets FEN", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, false)()
		defer saveRestoreBool(fenOutput, true)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.FEN {
			t.Errorf("Format = %v; want FEN", cfg.Output.Format)
		}
	})

	t.Run("defaults to board with history and coordinates", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, false)()
		defer saveRestoreBool(fenOutput, false)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if cfg.Output.Format != config.Board || !cfg.Output.ShowHistory || !cfg.Output.Coordinates {
			t.Errorf("Output = %+v; want board defaults", cfg.Output)
		}
	})

	t.Run("content switches", func(t *testing.T) {
		defer saveRestoreBool(showMoves, true)()
		defer saveRestoreBool(noHistory, true)()
		defer saveRestoreBool(noCoords, true)()
		cfg := config.NewConfig()
		applyOutputFlags(cfg)
		if !cfg.Output.ShowMoves || cfg.Output.ShowHistory || cfg.Output.Coordinates {
			t.Errorf("Output = %+v; want moves without history or coordinates", cfg.Output)
		}
	})
}

func TestApplyPerftFlags(t *testing.T) {
	t.Run("explicit workers", func(t *testing.T) {
		defer saveRestoreInt(perftDepth, 4)()
		defer saveRestoreBool(divide, true)()
		defer saveRestoreBool(verify, true)()
		defer saveRestoreInt(workers, 3)()
		cfg := config.NewConfig()
		applyPerftFlags(cfg)
		want := config.PerftConfig{Depth: 4, Divide: true, Workers: 3, Verify: true}
		if cfg.Perft != want {
			t.Errorf("Perft = %+v; want %+v", cfg.Perft, want)
		}
	})

	t.Run("auto-detect workers", func(t *testing.T) {
		defer saveRestoreInt(workers, 0)()
		cfg := config.NewConfig()
		applyPerftFlags(cfg)
		if cfg.Perft.Workers != runtime.NumCPU() {
			t.Errorf("Workers = %d; want %d", cfg.Perft.Workers, runtime.NumCPU())
		}
	})
}

func TestApplyGameFlags(t *testing.T) {
	defer saveRestoreString(startFEN, "8/8/8/8/8/8/8/K6k w - - 0 1")()
	defer saveRestoreBool(autoReset, true)()
	cfg := config.NewConfig()
	applyGameFlags(cfg)
	if cfg.StartFEN != "8/8/8/8/8/8/8/K6k w - - 0 1" || !cfg.AutoReset {
		t.Errorf("StartFEN, AutoReset = %q, %v", cfg.StartFEN, cfg.AutoReset)
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
		{"quiet wins", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}
