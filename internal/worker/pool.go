// Package worker provides a worker pool for splitting a perft count
// across root moves.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgray/chessrules-go/chess"
	"github.com/lgray/chessrules-go/rules"
)

// WorkItem is one root move to expand. Position must be a private clone;
// the worker pushes the move and counts the subtree in place.
type WorkItem struct {
	Move     chess.Move
	Position *rules.Position
	Depth    int // total search depth, including the root move
	Index    int // original move-list index for ordering results
}

// Result is the node count of one root move's subtree.
type Result struct {
	Move  chess.Move
	Nodes uint64
	Index int
}

// Pool manages a pool of workers counting perft subtrees in parallel.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan Result
	wg         sync.WaitGroup
	stopFlag   int32
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

// NewPool creates a worker pool. Default: 1 worker, buffer size of 32.
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 32,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker counts subtrees from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without processing
		}
		item.Position.PushMove(item.Move)
		nodes := item.Position.Perft(item.Depth - 1)
		item.Position.PopMove(item.Move)
		p.resultChan <- Result{Move: item.Move, Nodes: nodes, Index: item.Index}
	}
}

// Submit submits a root move for counting. This may block if the work
// channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items. Items already in
// the channel are drained but not counted.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once the last worker is done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading subtree counts.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
