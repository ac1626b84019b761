package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// Domain event types
const (
	InventoryChanged Type = domain.EventTypeInventoryChanged
	BoxOpened        Type = domain.EventTypeBoxOpened
	ItemSold         Type = domain.EventTypeItemSold
	ItemUsed         Type = domain.EventTypeItemUsed
	ListingCreated   Type = domain.EventTypeListingCreated
	ListingSold      Type = domain.EventTypeListingSold
	ListingCancelled Type = domain.EventTypeListingCancelled
)

// InventoryChangedPayloadV1 names the players whose derived stats are stale
type InventoryChangedPayloadV1 struct {
	PlayerIDs []string `json:"player_ids"`
	Reason    string   `json:"reason"`
	Timestamp int64    `json:"timestamp"`
}

// BoxOpenedPayloadV1 is the typed payload for box opened events
type BoxOpenedPayloadV1 struct {
	PlayerID   string        `json:"player_id"`
	BoxID      int           `json:"box_id"`
	WeaponID   int           `json:"weapon_id"`
	Rarity     domain.Rarity `json:"rarity"`
	Grade      string        `json:"grade,omitempty"`
	Conta      bool          `json:"conta"`
	PricePaid  string        `json:"price_paid"`
	FinalPrice float64       `json:"final_price"`
	Timestamp  int64         `json:"timestamp"`
}

// ItemSoldPayloadV1 is the typed payload for sell-to-system events
type ItemSoldPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	ItemID    string `json:"item_id"`
	WeaponID  int    `json:"weapon_id"`
	Price     string `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// ItemUsedPayloadV1 is the typed payload for border consumption events
type ItemUsedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	ItemID    string `json:"item_id"`
	BorderID  string `json:"border_id"`
	Timestamp int64  `json:"timestamp"`
}

// ListingPayloadV1 is the typed payload for every market listing event
type ListingPayloadV1 struct {
	ListingID string `json:"listing_id"`
	SellerID  string `json:"seller_id"`
	BuyerID   string `json:"buyer_id,omitempty"`
	WeaponID  int    `json:"weapon_id"`
	Price     string `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewInventoryChangedEvent creates an inventory changed event for one or more players
func NewInventoryChangedEvent(reason string, playerIDs ...string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    InventoryChanged,
		Payload: InventoryChangedPayloadV1{
			PlayerIDs: playerIDs,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBoxOpenedEvent creates a box opened event from a committed opening
func NewBoxOpenedEvent(playerID string, boxID int, result *domain.OpenBoxResult) Event {
	payload := BoxOpenedPayloadV1{
		PlayerID:   playerID,
		BoxID:      boxID,
		Conta:      result.Loot.Conta,
		PricePaid:  result.PricePaid.String(),
		FinalPrice: result.Loot.FinalPrice,
		Timestamp:  time.Now().Unix(),
	}
	if result.Loot.Weapon != nil {
		payload.WeaponID = result.Loot.Weapon.ID
		payload.Rarity = result.Loot.Weapon.Rarity
	}
	if result.Loot.Grade != nil {
		payload.Grade = string(*result.Loot.Grade)
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     BoxOpened,
		Payload:  payload,
		Metadata: Metadata{MetadataKeySource: SourceLootbox},
	}
}

// NewItemSoldEvent creates a sell-to-system event
func NewItemSoldEvent(playerID string, sale *domain.SaleResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: ItemSoldPayloadV1{
			PlayerID:  playerID,
			ItemID:    sale.ItemID,
			WeaponID:  sale.WeaponID,
			Price:     sale.Price.String(),
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemUsedEvent creates an item used event
func NewItemUsedEvent(playerID string, use *domain.UseResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUsed,
		Payload: ItemUsedPayloadV1{
			PlayerID:  playerID,
			ItemID:    use.ItemID,
			BorderID:  use.BorderUnlockID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewListingEvent creates a market event of the given type for a listing
func NewListingEvent(eventType Type, listing *domain.Listing) Event {
	payload := ListingPayloadV1{
		ListingID: listing.ID,
		SellerID:  listing.SellerID,
		WeaponID:  listing.Item.WeaponID,
		Price:     listing.Price.String(),
		Timestamp: time.Now().Unix(),
	}
	if listing.BuyerID != nil {
		payload.BuyerID = *listing.BuyerID
	}
	return Event{
		Version:  EventSchemaVersion,
		Type:     eventType,
		Payload:  payload,
		Metadata: Metadata{MetadataKeySource: SourceMarket},
	}
}

// DecodePayload decodes an event payload into T. In-process events already
// carry the typed struct; anything else (a map from a replayed dead letter,
// raw JSON) is converted through encoding/json.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
		return result, fmt.Errorf("nil %T payload", v)
	case json.RawMessage:
		return result, json.Unmarshal(v, &result)
	}
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is what services depend on to emit post-commit events
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// slow work belongs on the worker pool.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
