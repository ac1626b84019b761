package metrics

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.InventoryChanged,
		event.BoxOpened,
		event.ItemSold,
		event.ItemUsed,
		event.ListingCreated,
		event.ListingSold,
		event.ListingCancelled,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. A payload that cannot be
// decoded is logged and skipped; metrics never fail an event.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BoxOpened:
		p, err := event.DecodePayload[event.BoxOpenedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		grade := p.Grade
		if grade == "" {
			grade = GradeNone
		}
		box := strconv.Itoa(p.BoxID)
		BoxesOpened.WithLabelValues(box, p.Rarity.String(), grade).Inc()
		if p.Conta {
			ContaDrops.WithLabelValues(box).Inc()
		}
		addAmount(ctx, BoxSpend, p.PricePaid)

	case event.ItemSold:
		p, err := event.DecodePayload[event.ItemSoldPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsSold.WithLabelValues(strconv.Itoa(p.WeaponID)).Inc()
		addAmount(ctx, MoneyEarned, p.Price)

	case event.ItemUsed:
		p, err := event.DecodePayload[event.ItemUsedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsUsed.WithLabelValues(p.BorderID).Inc()

	case event.ListingCreated:
		MarketListings.Inc()

	case event.ListingCancelled:
		MarketCancellations.Inc()

	case event.ListingSold:
		p, err := event.DecodePayload[event.ListingPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		MarketSales.Inc()
		addAmount(ctx, MarketVolume, p.Price)
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

type adder interface {
	Add(float64)
}

// addAmount adds a decimal string amount to a counter
func addAmount(ctx context.Context, c adder, amount string) {
	if amount == "" {
		return
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgInvalidAmount, "amount", amount, "error", err)
		return
	}
	if d.IsPositive() {
		c.Add(d.InexactFloat64())
	}
}
