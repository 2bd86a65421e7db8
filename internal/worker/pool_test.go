package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Move: item.Move, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Move: item.Move, Index: item.Index, Nodes: 1}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
}

// TestPoolOptions tests the functional options constructor.
func TestPoolOptions(t *testing.T) {
	tests := []struct {
		name       string
		opts       []PoolOption
		wantWorker int
		wantBuffer int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if pool.numWorkers != tt.wantWorker {
				t.Errorf("numWorkers = %d; want %d", pool.numWorkers, tt.wantWorker)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestDivideMatchesSequential checks that parallel divide equals the sequential one.
func TestDivideMatchesSequential(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			e, toMove, err := engine.NewEngineFromFEN(fen)
			if err != nil {
				t.Fatalf("NewEngineFromFEN(%q) error: %v", fen, err)
			}
			pos := e.Position()

			want := engine.Divide(pos, toMove, 3)
			got := Divide(pos, toMove, 3, 4)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Divide() mismatch (-want +got):\n%s", diff)
			}
			if Total(got) != engine.Perft(pos, toMove, 3) {
				t.Errorf("Total(Divide()) = %d; want %d", Total(got), engine.Perft(pos, toMove, 3))
			}
		})
	}
}

// TestDivideZeroDepth tests that a non-positive depth yields no entries.
func TestDivideZeroDepth(t *testing.T) {
	pos := engine.New().Position()
	if got := Divide(pos, chess.White, 0, 2); got != nil {
		t.Errorf("Divide(depth 0) = %v; want nil", got)
	}
}

// TestCountSubtree tests the standard process function on one root move.
func TestCountSubtree(t *testing.T) {
	pos := engine.New().Position()
	move := engine.Move{From: chess.Sq(4, 1), CandidateMove: engine.CandidateMove{To: chess.Sq(4, 3)}}

	result := CountSubtree(WorkItem{Position: pos, ToMove: chess.White, Move: move, Depth: 1, Index: 7})

	if result.Nodes != 20 {
		t.Errorf("CountSubtree(e2e4, depth 1).Nodes = %d; want 20", result.Nodes)
	}
	if result.Index != 7 {
		t.Errorf("CountSubtree().Index = %d; want 7", result.Index)
	}
}

// TestDivideContextCancelled tests that a cancelled context stops the count.
func TestDivideContextCancelled(t *testing.T) {
	pos := engine.New().Position()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	entries, err := DivideContext(ctx, pos, chess.White, 3, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("DivideContext(cancelled) error = %v; want context.Canceled", err)
	}
	if entries != nil {
		t.Errorf("DivideContext(cancelled) = %v; want nil", entries)
	}
}

// TestDivideContextStopsMidway tests that cancelling during a count skips the
// remaining root moves and reports the cancellation.
func TestDivideContextStopsMidway(t *testing.T) {
	pos := engine.New().Position()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	entries, err := DivideContext(ctx, pos, chess.White, 5, 1)
	if err == nil {
		t.Skip("depth 5 finished before the deadline")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("DivideContext() error = %v; want context.DeadlineExceeded", err)
	}
	if len(entries) >= 20 {
		t.Errorf("DivideContext() returned %d entries; want fewer than 20", len(entries))
	}
}

// TestDivideContextComplete tests that an uncancelled context matches Divide.
func TestDivideContextComplete(t *testing.T) {
	pos := engine.New().Position()
	got, err := DivideContext(context.Background(), pos, chess.White, 2, 3)
	if err != nil {
		t.Fatalf("DivideContext() error: %v", err)
	}
	if diff := cmp.Diff(engine.Divide(pos, chess.White, 2), got); diff != "" {
		t.Errorf("DivideContext() mismatch (-want +got):\n%s", diff)
	}
}
