package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/LootForge_Go/internal/logger"
)

// retryEntry is a failed event waiting for its next attempt
type retryEntry struct {
	event       Event
	attempts    int
	lastErr     error
	nextAttempt time.Time
}

// ResilientPublisher wraps an event Bus with exponential-backoff retries and a
// dead-letter file. Callers never block on delivery.
type ResilientPublisher struct {
	bus          Bus
	retryQueue   chan retryEntry
	maxRetries   int
	retryDelay   time.Duration
	deadLetter   *DeadLetterWriter
	onDeadLetter func(Event)

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// OnDeadLetter registers a callback invoked for every dead-lettered event.
// Must be called before the first publish.
func (p *ResilientPublisher) OnDeadLetter(fn func(Event)) {
	p.onDeadLetter = fn
}

// PublishWithRetry publishes an event. A failed first attempt is queued for
// background retries; the caller is never blocked and never sees the error.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err)

	p.enqueue(retryEntry{
		event:       event,
		attempts:    1,
		lastErr:     err,
		nextAttempt: time.Now().Add(CalculateRetryDelay(p.retryDelay, 1)),
	})
}

// Publish implements Bus. Delivery failures are handled by the retry worker.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case <-p.shutdown:
		logger.Warn(LogMsgEventDroppedShutdown, "event_type", entry.event.Type)
		p.writeDeadLetter(entry)
		return
	default:
	}

	select {
	case p.retryQueue <- entry:
	default:
		logger.Error(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		p.writeDeadLetter(entry)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			if !p.waitUntil(entry.nextAttempt) {
				p.finalAttempt(entry)
				continue
			}
			p.retry(entry)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

// waitUntil sleeps until t and reports false if shutdown started first
func (p *ResilientPublisher) waitUntil(t time.Time) bool {
	d := time.Until(t)
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-p.shutdown:
		return false
	}
}

func (p *ResilientPublisher) retry(entry retryEntry) {
	ctx := context.Background()

	err := p.bus.Publish(ctx, entry.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded,
			"event_type", entry.event.Type,
			"attempt", entry.attempts+1)
		return
	}

	entry.attempts++
	entry.lastErr = err
	if entry.attempts > p.maxRetries {
		logger.Error(LogMsgEventRetryExhausted,
			"event_type", entry.event.Type,
			"attempts", entry.attempts,
			"error", err)
		p.writeDeadLetter(entry)
		return
	}

	logger.Warn(LogMsgEventRetryFailed,
		"event_type", entry.event.Type,
		"attempt", entry.attempts,
		"error", err)
	entry.nextAttempt = time.Now().Add(CalculateRetryDelay(p.retryDelay, entry.attempts))
	p.enqueue(entry)
}

// finalAttempt tries an entry once more during shutdown
func (p *ResilientPublisher) finalAttempt(entry retryEntry) {
	if err := p.bus.Publish(context.Background(), entry.event); err != nil {
		entry.attempts++
		entry.lastErr = err
		p.writeDeadLetter(entry)
	}
}

func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if p.deadLetter != nil {
		if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
			logger.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
		}
	}
	if p.onDeadLetter != nil {
		p.onDeadLetter(entry.event)
	}
}

// Shutdown stops the retry worker after a final delivery attempt for every
// queued event. It returns ctx.Err() if the drain does not finish in time.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.shutdownOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if p.deadLetter != nil {
			return p.deadLetter.Close()
		}
		return nil
	case <-ctx.Done():
		logger.Error(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
