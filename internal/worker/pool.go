// Package worker provides a worker pool for counting move subtrees in parallel.
//
// Each work item carries an immutable engine.Position, so workers never share
// mutable board state.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// WorkItem represents one root move whose subtree is to be counted.
type WorkItem struct {
	Position engine.Position // Position before Move is played
	ToMove   chess.Colour
	Move     engine.Move
	Depth    int // Remaining depth below the root move
	Index    int // Original index for tracking
}

// ProcessResult represents the result of processing a work item.
type ProcessResult struct {
	Move  engine.Move
	Index int
	Nodes uint64
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// CountSubtree is the standard ProcessFunc: it plays the item's move and
// counts the legal move tree below it.
func CountSubtree(item WorkItem) ProcessResult {
	next := item.Position.Play(item.Move)
	return ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: engine.Perft(next, item.ToMove.Opposite(), item.Depth),
	}
}

// Divide computes engine.Divide with the root moves spread across workers.
// The result is identical to the sequential version.
func Divide(pos engine.Position, toMove chess.Colour, depth, workers int) []engine.DivideEntry {
	entries, _ := DivideContext(context.Background(), pos, toMove, depth, workers)
	return entries
}

// DivideContext is Divide that stops the pool when ctx is done. Root moves
// already being counted finish; the rest are skipped. If any root move was
// skipped the partial entries are returned with ctx.Err().
func DivideContext(ctx context.Context, pos engine.Position, toMove chess.Colour, depth, workers int) ([]engine.DivideEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if depth < 1 {
		return nil, nil
	}
	moves := pos.AllMoves(toMove)
	pool := NewPool(CountSubtree, WithWorkers(workers), WithBufferSize(len(moves)+1))
	pool.Start()
	release := context.AfterFunc(ctx, pool.Stop)
	defer release()

	go func() {
		for i, m := range moves {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Position: pos, ToMove: toMove, Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	entries := make([]engine.DivideEntry, 0, len(moves))
	for result := range pool.Results() {
		entries = append(entries, engine.DivideEntry{Move: result.Move, Nodes: result.Nodes})
	}
	engine.SortDivide(entries)
	if len(entries) < len(moves) {
		return entries, ctx.Err()
	}
	return entries, nil
}

// Total sums the node counts of divide entries.
func Total(entries []engine.DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
