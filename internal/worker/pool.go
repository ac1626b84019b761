package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/LootForge_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool is a fixed set of goroutines draining a bounded job queue. Jobs can
// also be scheduled to enter the queue after a delay.
type Pool struct {
	BaseWorker

	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	startOnce sync.Once
	stopOnce  sync.Once
	stopErr   error
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: DefaultJobTimeout,
		ctx:        ctx,
		cancel:     cancel,
	}
	p.init()
	return p
}

// WithJobTimeout bounds how long a single job may run
func (p *Pool) WithJobTimeout(d time.Duration) *Pool {
	p.jobTimeout = d
	return p
}

// Start starts the workers
func (p *Pool) Start() {
	p.startOnce.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go p.worker()
		}
	})
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

// drain runs whatever is still queued when the pool stops
func (p *Pool) drain() {
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		default:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx, cancel := context.WithTimeout(p.ctx, p.jobTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			logger.Error(LogMsgWorkerJobPanicked, "panic", fmt.Sprint(r))
		}
	}()

	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// TryEnqueue adds a job without blocking. It returns false if the queue is
// full or the pool is stopping.
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case <-p.shutdown:
		return false
	default:
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Enqueue adds a job, blocking until there is room or ctx is done
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	select {
	case <-p.shutdown:
		return ErrPoolStopped
	default:
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-p.shutdown:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// EnqueueAfter queues a job once delay has elapsed. Pending delayed jobs are
// discarded when the pool stops. It reports false if the pool is stopping.
func (p *Pool) EnqueueAfter(delay time.Duration, job Job) bool {
	return p.schedule(delay, func() {
		if !p.TryEnqueue(job) {
			logger.Warn(LogMsgDelayedJobDropped, "delay", delay.String())
		}
	})
}

// QueueLength reports the number of jobs waiting to run
func (p *Pool) QueueLength() int {
	return len(p.jobQueue)
}

// Stop stops accepting jobs, runs what is already queued and waits for the
// workers. Running jobs are cancelled if ctx expires first.
func (p *Pool) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		p.stopErr = p.shutdownInternal(ctx, PoolName)
		p.cancel()
	})
	return p.stopErr
}
