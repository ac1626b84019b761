package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LootForge_Go/internal/logger"
)

// BaseWorker tracks pending timers and in-flight goroutines of a background worker
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[uuid.UUID]*time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[uuid.UUID]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// schedule runs fn after delay unless the worker shuts down first. It
// reports false if the worker is already shutting down.
func (w *BaseWorker) schedule(delay time.Duration, fn func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.shutdown:
		return false
	default:
	}

	id := uuid.New()
	w.timers[id] = time.AfterFunc(delay, func() {
		w.removeTimer(id)
		fn()
	})
	return true
}

func (w *BaseWorker) removeTimer(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.timers, id)
}

// pendingTimers reports how many delayed executions are waiting
func (w *BaseWorker) pendingTimers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	close(w.shutdown)
	cancelled := len(w.timers)
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = make(map[uuid.UUID]*time.Timer)
	w.mu.Unlock()

	if cancelled > 0 {
		log.Info("Cancelled pending "+workerName+" executions", "count", cancelled)
	}

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
