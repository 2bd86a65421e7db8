package testutil

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// MustEngineFromFEN builds an engine from fen and returns it with the side to move.
// It calls t.Fatal if the FEN is rejected.
func MustEngineFromFEN(t testing.TB, fen string) (*engine.Engine, chess.Colour) {
	t.Helper()
	e, toMove, err := engine.NewEngineFromFEN(fen)
	if err != nil {
		t.Fatalf("NewEngineFromFEN(%q) error: %v", fen, err)
	}
	return e, toMove
}

// MustSquare parses an algebraic square name, calling t.Fatal on failure.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return sq
}

// MustPieceAt returns the piece on the named square, calling t.Fatal if it is empty.
func MustPieceAt(t testing.TB, e *engine.Engine, name string) engine.Piece {
	t.Helper()
	p, ok := e.PieceAt(MustSquare(t, name))
	if !ok {
		t.Fatalf("PieceAt(%s) = empty, want a piece", name)
	}
	return p
}

// MustMove moves the piece on from to the empty square to, calling t.Fatal on error.
func MustMove(t testing.TB, e *engine.Engine, from, to string) {
	t.Helper()
	p := MustPieceAt(t, e, from)
	if err := e.MovePiece(p.ID, MustSquare(t, to)); err != nil {
		t.Fatalf("MovePiece(%s, %s) error: %v", from, to, err)
	}
}

// Destinations returns the algebraic names of the candidate destinations, in order.
func Destinations(moves []engine.CandidateMove) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To.String())
	}
	return out
}
