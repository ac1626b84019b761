package event

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootForge_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var received []string

	bus.Subscribe(InventoryChanged, func(ctx context.Context, evt Event) error {
		payload, err := DecodePayload[InventoryChangedPayloadV1](evt.Payload)
		require.NoError(t, err)
		received = append(received, payload.PlayerIDs...)
		return nil
	})

	err := bus.Publish(context.Background(), NewInventoryChangedEvent(domain.ChangeReasonTraded, "buyer", "seller"))

	require.NoError(t, err)
	assert.Equal(t, []string{"buyer", "seller"}, received)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: ItemSold}))
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0

	handler := func(ctx context.Context, evt Event) error {
		count++
		return nil
	}
	bus.Subscribe(BoxOpened, handler)
	bus.Subscribe(BoxOpened, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: BoxOpened}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishAggregatesHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	called := 0

	bus.Subscribe(ItemUsed, func(ctx context.Context, evt Event) error {
		called++
		return errors.New("handler error")
	})
	bus.Subscribe(ItemUsed, func(ctx context.Context, evt Event) error {
		called++
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: ItemUsed})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "encountered 1 errors")
	assert.Equal(t, 2, called, "every handler runs even when one fails")
}

func TestDecodePayload_FromMap(t *testing.T) {
	// Dead-letter replays deliver payloads as generic maps
	raw := map[string]interface{}{
		"player_ids": []interface{}{"p1"},
		"reason":     "sold",
	}

	payload, err := DecodePayload[InventoryChangedPayloadV1](raw)

	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, payload.PlayerIDs)
	assert.Equal(t, domain.ChangeReasonSold, payload.Reason)
}

func TestDecodePayload_FromPointer(t *testing.T) {
	payload, err := DecodePayload[ItemSoldPayloadV1](&ItemSoldPayloadV1{ItemID: "i1"})
	require.NoError(t, err)
	assert.Equal(t, "i1", payload.ItemID)
}

func TestNewListingEvent(t *testing.T) {
	buyer := "buyer-1"
	listing := &domain.Listing{
		ID:       "l1",
		SellerID: "seller-1",
		BuyerID:  &buyer,
		Item:     domain.ItemSnapshot{WeaponID: 16},
		Price:    decimal.RequireFromString("12.5"),
	}

	evt := NewListingEvent(ListingSold, listing)

	assert.Equal(t, ListingSold, evt.Type)
	assert.Equal(t, SourceMarket, evt.Metadata[MetadataKeySource])
	payload, ok := evt.Payload.(ListingPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "buyer-1", payload.BuyerID)
	assert.Equal(t, 16, payload.WeaponID)
	assert.Equal(t, "12.5", payload.Price)
}

func TestNewBoxOpenedEvent(t *testing.T) {
	grade := domain.GradeS
	result := &domain.OpenBoxResult{
		Loot: domain.LootResult{
			Weapon:     &domain.Weapon{ID: 30, Rarity: domain.RarityMythic},
			Grade:      &grade,
			Conta:      true,
			FinalPrice: 116550,
		},
		PricePaid: decimal.NewFromInt(350),
	}

	evt := NewBoxOpenedEvent("p1", 3, result)

	payload, ok := evt.Payload.(BoxOpenedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 30, payload.WeaponID)
	assert.Equal(t, domain.RarityMythic, payload.Rarity)
	assert.Equal(t, "S", payload.Grade)
	assert.True(t, payload.Conta)
	assert.Equal(t, "350", payload.PricePaid)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := RetryInitialDelaySeconds * 1000
	assert.EqualValues(t, base, CalculateRetryDelay(2000, 1))
	assert.EqualValues(t, 4000, CalculateRetryDelay(2000, 2))
	assert.EqualValues(t, 16000, CalculateRetryDelay(2000, 4))
	assert.EqualValues(t, 2000, CalculateRetryDelay(2000, 0))
}
