package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/metrics"
	"github.com/osse101/LootForge_Go/internal/passive"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventSystem *EventSystem
	Scheduler   *passive.Scheduler
}

// RegisterEventHandlers subscribes the metrics collector and the passive
// recalculation scheduler, and routes dead-lettered inventory changes back
// to the scheduler so the next sweep retries them.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	bus := deps.EventSystem.Bus

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	deps.Scheduler.Register(bus)
	slog.Info(LogMsgPassiveSchedulerRegistered)

	deps.EventSystem.Publisher.OnDeadLetter(func(evt event.Event) {
		slog.Warn(LogMsgEventDeadLettered, "type", evt.Type, "version", evt.Version)
		if evt.Type != event.InventoryChanged {
			return
		}
		payload, err := event.DecodePayload[event.InventoryChangedPayloadV1](evt.Payload)
		if err != nil {
			return
		}
		deps.Scheduler.Park(payload.PlayerIDs...)
	})

	return nil
}
