package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/LootForge_Go/internal/config"
	"github.com/osse101/LootForge_Go/internal/event"
)

// EventSystem bundles the in-process bus, its retrying publisher and the
// dead-letter file used by background stat recalculation.
type EventSystem struct {
	Bus              *event.MemoryBus
	Publisher        *event.ResilientPublisher
	RecalcDeadLetter *event.DeadLetterWriter
}

// InitializeEventSystem creates and configures the event bus and resilient publisher.
// Zero retry settings fall back to package defaults. The dead-letter directory
// is created when missing.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	bus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}

	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}

	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	recalcDeadLetter, err := event.NewDeadLetterWriter(deadLetterPath + RecalcDeadLetterSuffix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateRecalcDeadLetter, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return &EventSystem{
		Bus:              bus,
		Publisher:        publisher,
		RecalcDeadLetter: recalcDeadLetter,
	}, nil
}
