package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/engine"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertions_Success(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, "hello", "hello", "value should be %s", "hello")
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", errSample), errSample)
	AssertTrue(t, true)
	AssertFalse(t, false)
}

var errSample = errors.New("sample")

func TestAssertions_Failure(t *testing.T) {
	tests := []struct {
		name   string
		assert func(t testing.TB)
		want   string
	}{
		{"equal", func(t testing.TB) { AssertEqual(t, 1, 2) }, "mismatch (-want +got):\n"},
		{"no error", func(t testing.TB) { AssertNoError(t, errSample, "op") }, "op: unexpected error: sample"},
		{"error is", func(t testing.TB) { AssertErrorIs(t, nil, errSample) }, "error = <nil>, want sample"},
		{"true", func(t testing.TB) { AssertTrue(t, false) }, "expected true but got false"},
		{"false", func(t testing.TB) { AssertFalse(t, true, "flag %d", 3) }, "flag 3: expected false but got true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.assert(r)
			if len(r.failures) != 1 {
				t.Fatalf("failures = %d, want 1", len(r.failures))
			}
			if got := r.failures[0]; len(got) < len(tt.want) || got[:len(tt.want)] != tt.want {
				t.Errorf("failure = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestFixtures(t *testing.T) {
	e, toMove := MustEngineFromFEN(t, engine.InitialFEN)
	if toMove.String() != "white" {
		t.Errorf("side to move = %v, want white", toMove)
	}

	MustMove(t, e, "e2", "e4")
	pawn := MustPieceAt(t, e, "e4")
	moves, err := e.LegalMoves(pawn.ID, false)
	AssertNoError(t, err)
	AssertEqual(t, Destinations(moves), []string{"e5"})
}
