package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/LootForge_Go/internal/scheduler"
	"github.com/osse101/LootForge_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Ticker     *scheduler.Scheduler
	Background *Background
	Events     *EventSystem
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Periodic sweeps and the worker pool (finish queued recalculations)
// 3. Event publisher (flush pending retries to the dead-letter file)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownWorkers)
	if c.Ticker != nil {
		c.Ticker.Stop()
	}
	if c.Background != nil {
		if err := c.Background.Pool.Stop(ctx); err != nil {
			slog.Error(LogMsgWorkerPoolShutdownFailed, "error", err)
		}
		if parked := c.Background.Scheduler.Parked(); len(parked) > 0 {
			slog.Warn(LogMsgParkedRecalculations, "players", parked)
		}
	}

	if c.Events != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.Events.Publisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
		if err := c.Events.RecalcDeadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
