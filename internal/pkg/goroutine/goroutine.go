package goroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shandysiswandi/portfolio/internal/pkg/stacktrace"
	"go.uber.org/atomic"
)

const (
	// DefaultWorkers is used when NewPool receives a non-positive worker count.
	DefaultWorkers = 3
	// DefaultQueueSize is used when NewPool receives a non-positive queue size.
	DefaultQueueSize = 100
)

var (
	// ErrPoolClosed resolves tasks submitted after Close or still queued when Close ran.
	ErrPoolClosed = errors.New("goroutine pool is closed")
	// ErrTaskPanicked wraps a panic recovered from a task.
	ErrTaskPanicked = errors.New("goroutine pool task panicked")
)

// Task is a unit of blocking work run by a pool worker.
type Task func(ctx context.Context) error

// Future is the pending result of a submitted Task.
type Future struct {
	done chan struct{}
	err  error
	once sync.Once
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Wait blocks until the task finishes or ctx is done, whichever comes first.
// Giving up on the wait does not stop a task that already started.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once the task has a result.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

type job struct {
	ctx    context.Context
	task   Task
	future *Future
}

// Pool runs tasks on a fixed number of workers fed from a FIFO queue.
//
// There is no retry and no ordering guarantee between tasks picked by
// different workers. Close is non-blocking: queued tasks are resolved with
// ErrPoolClosed and running tasks are left to finish on their own.
type Pool struct {
	jobs      chan job
	quit      chan struct{}
	closeOnce sync.Once
	inFlight  *atomic.Int64
	workers   int
}

// NewPool starts workers goroutines reading from a queue of queueSize slots.
func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}

	p := &Pool{
		jobs:     make(chan job, queueSize),
		quit:     make(chan struct{}),
		inFlight: atomic.NewInt64(0),
		workers:  workers,
	}

	for range workers {
		go p.worker()
	}

	return p
}

// Submit queues task and returns its Future. It blocks only while the queue
// is full, and gives up with ctx.Err() when ctx ends first.
func (p *Pool) Submit(ctx context.Context, task Task) *Future {
	fut := newFuture()

	select {
	case <-p.quit:
		fut.resolve(ErrPoolClosed)
		return fut
	default:
	}

	select {
	case p.jobs <- job{ctx: ctx, task: task, future: fut}:
	case <-p.quit:
		fut.resolve(ErrPoolClosed)
		return fut
	case <-ctx.Done():
		fut.resolve(ctx.Err())
		return fut
	}

	// Close may have drained the queue between our send and now.
	select {
	case <-p.quit:
		p.drain()
	default:
	}

	return fut
}

// Workers reports the fixed worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// InFlight reports how many tasks are currently running.
func (p *Pool) InFlight() int64 {
	return p.inFlight.Load()
}

// Close stops accepting work and returns without waiting for running tasks.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() {
		close(p.quit)
		dropped := p.drain()
		slog.Info("goroutine pool closed",
			"dropped_queued", dropped,
			"abandoned_running", p.inFlight.Load(),
		)
	})

	return nil
}

func (p *Pool) drain() int {
	n := 0
	for {
		select {
		case j := <-p.jobs:
			j.future.resolve(ErrPoolClosed)
			n++
		default:
			return n
		}
	}
}

func (p *Pool) worker() {
	for {
		select {
		case <-p.quit:
			return
		case j := <-p.jobs:
			p.run(j)
		}
	}
}

func (p *Pool) run(j job) {
	select {
	case <-p.quit:
		j.future.resolve(ErrPoolClosed)
		return
	default:
	}

	if err := j.ctx.Err(); err != nil {
		slog.WarnContext(j.ctx, "goroutine pool task skipped", "because", err)
		j.future.resolve(err)
		return
	}

	p.inFlight.Inc()
	defer p.inFlight.Dec()

	defer func() {
		if rvr := recover(); rvr != nil {
			slog.ErrorContext(j.ctx, "panic occurred in goroutine pool task", "because", rvr, "stack", stacktrace.Internal(2))
			j.future.resolve(fmt.Errorf("%w: %v", ErrTaskPanicked, rvr))
		}
	}()

	// started tasks run to completion even if the submitter goes away
	j.future.resolve(j.task(context.WithoutCancel(j.ctx)))
}
