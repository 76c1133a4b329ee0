// Package worker provides a worker pool for parallel frame composition.
package worker

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/solitaire-go/internal/solver"
)

// WorkItem represents one solution step to be composed into a frame.
type WorkItem struct {
	Step      solver.Step
	Index     int  // Position in the frame sequence
	Highlight bool // Mark the move's source and destination tiles
}

// FrameResult represents a composed frame. Index carries the sequence
// position so the consumer can reassemble frames in order regardless of
// which worker finished first.
type FrameResult struct {
	Index int
	Image image.Image
	Err   error
}

// ComposeFunc is the function signature for composing a work item.
type ComposeFunc func(item WorkItem) FrameResult

// Pool manages a pool of workers for parallel frame composition.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan FrameResult
	compose    ComposeFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// compose is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPool(compose ComposeFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		compose:    compose,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan FrameResult, p.bufferSize)
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
			continue // Drain channel without composing
		}
		p.resultChan <- p.compose(item)
	}
}

// Submit submits a work item for composition.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if atomic.LoadInt32(&p.stopFlag) != 0 {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop composing new items.
// Items already in the channel will be drained but not composed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading composed frames.
func (p *Pool) Results() <-chan FrameResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
