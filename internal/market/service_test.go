package market

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
)

const (
	sellerID = "11111111-1111-1111-1111-111111111111"
	buyerID  = "22222222-2222-2222-2222-222222222222"
	itemID   = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	weaponID = 16
)

// recordingPublisher captures published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func setupMarket(t *testing.T) (Service, *fakeStore, *recordingPublisher) {
	t.Helper()
	store := newFakeStore()
	store.addPlayer(sellerID, 0)
	store.addPlayer(buyerID, 1000)
	grade := domain.GradeS
	store.addItem(domain.InventoryItem{
		ID:         itemID,
		OwnerID:    sellerID,
		WeaponID:   weaponID,
		Grade:      &grade,
		Conta:      true,
		FinalPrice: decimal.NewFromInt(6300),
		Passive:    &domain.Passive{Effect: domain.Luck{Value: 58.5}},
	})
	pub := &recordingPublisher{}
	return NewService(store, catalog.Default(), pub), store, pub
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		wantErr error
	}{
		{"minimum unit", "0.0001", nil},
		{"whole", "250", nil},
		{"zero", "0", domain.ErrPriceTooLow},
		{"negative", "-5", domain.ErrPriceTooLow},
		{"below unit", "0.00009", domain.ErrPriceTooLow},
		{"too precise", "1.00001", domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrice(price(tt.price))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestListItem_SnapshotsItem(t *testing.T) {
	ctx := context.Background()
	svc, store, pub := setupMarket(t)

	listing, err := svc.ListItem(ctx, sellerID, itemID, price("7000"))
	require.NoError(t, err)

	assert.Equal(t, domain.ListingActive, listing.Status)
	assert.Equal(t, weaponID, listing.Item.WeaponID)
	assert.Equal(t, "AWP Flama", listing.Item.WeaponName)
	assert.Equal(t, domain.RarityLegendary, listing.Item.Rarity)
	assert.Equal(t, domain.GradeS, *listing.Item.Grade)
	assert.True(t, listing.Item.Conta)
	assert.True(t, decimal.NewFromInt(6300).Equal(listing.Item.FinalPrice))
	assert.Equal(t, sellerID, store.owner(itemID))
	assert.Equal(t, []event.Type{event.ListingCreated}, pub.types())
}

func TestListItem_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("already listed", func(t *testing.T) {
		svc, _, _ := setupMarket(t)
		_, err := svc.ListItem(ctx, sellerID, itemID, price("10"))
		require.NoError(t, err)
		_, err = svc.ListItem(ctx, sellerID, itemID, price("20"))
		assert.ErrorIs(t, err, domain.ErrItemListed)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("not owned", func(t *testing.T) {
		svc, _, _ := setupMarket(t)
		_, err := svc.ListItem(ctx, buyerID, itemID, price("10"))
		assert.ErrorIs(t, err, domain.ErrItemNotOwned)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("price too low", func(t *testing.T) {
		svc, store, _ := setupMarket(t)
		_, err := svc.ListItem(ctx, sellerID, itemID, price("0"))
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Zero(t, store.commits)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc, _, _ := setupMarket(t)
		_, err := svc.ListItem(ctx, sellerID, "missing", price("10"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBuyListing_Success(t *testing.T) {
	ctx := context.Background()
	svc, store, pub := setupMarket(t)

	listing, err := svc.ListItem(ctx, sellerID, itemID, price("250.5"))
	require.NoError(t, err)

	receipt, err := svc.BuyListing(ctx, buyerID, listing.ID)
	require.NoError(t, err)

	assert.True(t, price("749.5").Equal(receipt.BuyerBalance))
	assert.True(t, price("250.5").Equal(receipt.SellerBalance))
	assert.True(t, price("749.5").Equal(store.balance(buyerID)))
	assert.True(t, price("250.5").Equal(store.balance(sellerID)))
	assert.Equal(t, buyerID, store.owner(itemID))
	assert.True(t, store.weapons[buyerID][weaponID])
	assert.True(t, store.icons[buyerID][listing.Item.Icon])

	got, err := svc.Listing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingSold, got.Status)
	require.NotNil(t, got.BuyerID)
	assert.Equal(t, buyerID, *got.BuyerID)

	history, err := svc.History(ctx, weaponID, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, listing.ID, history[0].ListingID)

	assert.Equal(t, []event.Type{event.ListingCreated, event.InventoryChanged, event.ListingSold}, pub.types())
	payload, err := event.DecodePayload[event.InventoryChangedPayloadV1](pub.events[1].Payload)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{sellerID, buyerID}, payload.PlayerIDs)
}

func TestBuyListing_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("self purchase", func(t *testing.T) {
		svc, store, _ := setupMarket(t)
		listing, err := svc.ListItem(ctx, sellerID, itemID, price("10"))
		require.NoError(t, err)
		_, err = svc.BuyListing(ctx, sellerID, listing.ID)
		assert.ErrorIs(t, err, domain.ErrSelfPurchase)
		assert.Equal(t, sellerID, store.owner(itemID))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		svc, store, _ := setupMarket(t)
		listing, err := svc.ListItem(ctx, sellerID, itemID, price("1000.0001"))
		require.NoError(t, err)
		_, err = svc.BuyListing(ctx, buyerID, listing.ID)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.True(t, price("1000").Equal(store.balance(buyerID)))
		got, _ := svc.Listing(ctx, listing.ID)
		assert.Equal(t, domain.ListingActive, got.Status)
	})

	t.Run("exact balance", func(t *testing.T) {
		svc, store, _ := setupMarket(t)
		listing, err := svc.ListItem(ctx, sellerID, itemID, price("1000"))
		require.NoError(t, err)
		_, err = svc.BuyListing(ctx, buyerID, listing.ID)
		require.NoError(t, err)
		assert.True(t, store.balance(buyerID).IsZero())
	})

	t.Run("unknown listing", func(t *testing.T) {
		svc, _, _ := setupMarket(t)
		_, err := svc.BuyListing(ctx, buyerID, "missing")
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown buyer", func(t *testing.T) {
		svc, _, _ := setupMarket(t)
		listing, err := svc.ListItem(ctx, sellerID, itemID, price("10"))
		require.NoError(t, err)
		_, err = svc.BuyListing(ctx, "ghost", listing.ID)
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("store failure publishes nothing", func(t *testing.T) {
		svc, store, pub := setupMarket(t)
		listing, err := svc.ListItem(ctx, sellerID, itemID, price("10"))
		require.NoError(t, err)
		store.failOn = "InsertHistory"
		_, err = svc.BuyListing(ctx, buyerID, listing.ID)
		assert.ErrorIs(t, err, domain.ErrInternal)
		assert.Equal(t, []event.Type{event.ListingCreated}, pub.types())
		assert.Equal(t, 1, store.rollbacks)
	})
}

func TestListCancelRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, store, pub := setupMarket(t)

	before, err := (&fakeTx{store: store}).GetItemForUpdate(ctx, itemID)
	require.NoError(t, err)

	listing, err := svc.ListItem(ctx, sellerID, itemID, price("99"))
	require.NoError(t, err)

	cancelled, err := svc.CancelListing(ctx, sellerID, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.ResolvedAt)

	after, err := (&fakeTx{store: store}).GetItemForUpdate(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.True(t, store.balance(sellerID).IsZero())

	_, err = svc.BuyListing(ctx, buyerID, listing.ID)
	assert.ErrorIs(t, err, domain.ErrListingNotActive)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.CancelListing(ctx, sellerID, listing.ID)
	assert.ErrorIs(t, err, domain.ErrListingNotActive)

	// the item can be listed again once the old listing is terminal
	_, err = svc.ListItem(ctx, sellerID, itemID, price("120"))
	assert.NoError(t, err)

	assert.Equal(t, []event.Type{event.ListingCreated, event.ListingCancelled, event.ListingCreated}, pub.types())
}

func TestCancelListing_NotSeller(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupMarket(t)

	listing, err := svc.ListItem(ctx, sellerID, itemID, price("99"))
	require.NoError(t, err)

	_, err = svc.CancelListing(ctx, buyerID, listing.ID)
	assert.ErrorIs(t, err, domain.ErrNotSeller)

	got, err := svc.Listing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingActive, got.Status)
}

func TestListedItemCannotBeListedByAnotherPath(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := setupMarket(t)

	_, err := svc.ListItem(ctx, sellerID, itemID, price("50"))
	require.NoError(t, err)

	listed, err := (&fakeTx{store: store}).IsItemListed(ctx, itemID)
	require.NoError(t, err)
	assert.True(t, listed)
}

func TestNormalizeFilter(t *testing.T) {
	assert.Equal(t, DefaultListingLimit, NormalizeFilter(domain.ListingFilter{}).Limit)
	assert.Equal(t, MaxListingLimit, NormalizeFilter(domain.ListingFilter{Limit: 5000}).Limit)
	assert.Equal(t, 10, NormalizeFilter(domain.ListingFilter{Limit: 10}).Limit)
	assert.Equal(t, 0, NormalizeFilter(domain.ListingFilter{Offset: -3}).Offset)
}

func TestReadQueries(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := setupMarket(t)

	for i, p := range []string{"30", "10", "20", "50", "40", "60"} {
		id := string(rune('b'+i)) + itemID[1:]
		store.addItem(domain.InventoryItem{ID: id, OwnerID: sellerID, WeaponID: weaponID, FinalPrice: decimal.NewFromInt(1)})
		_, err := svc.ListItem(ctx, sellerID, id, price(p))
		require.NoError(t, err)
	}

	lowest, err := svc.LowestPrices(ctx, weaponID)
	require.NoError(t, err)
	require.Len(t, lowest, LowestPricesLimit)
	assert.True(t, price("10").Equal(lowest[0].Price))
	assert.True(t, price("50").Equal(lowest[4].Price))

	listings, err := svc.Listings(ctx, domain.ListingFilter{Search: "flama"})
	require.NoError(t, err)
	assert.Len(t, listings, 6)

	mine, err := svc.MyListings(ctx, sellerID)
	require.NoError(t, err)
	assert.Len(t, mine, 6)

	stats, err := svc.WeaponStats(ctx, weaponID)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.ActiveCount)
	assert.True(t, price("10").Equal(*stats.MinPrice))
	assert.True(t, price("60").Equal(*stats.MaxPrice))

	_, err = svc.LowestPrices(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrWeaponNotFound)

	minP, maxP := price("50"), price("10")
	_, err = svc.Listings(ctx, domain.ListingFilter{MinPrice: &minP, MaxPrice: &maxP})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
