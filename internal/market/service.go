package market

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// Service defines the player-to-player market interface
type Service interface {
	ListItem(ctx context.Context, sellerID, itemID string, price decimal.Decimal) (*domain.Listing, error)
	BuyListing(ctx context.Context, buyerID, listingID string) (*domain.PurchaseReceipt, error)
	CancelListing(ctx context.Context, playerID, listingID string) (*domain.Listing, error)

	Listing(ctx context.Context, listingID string) (*domain.Listing, error)
	Listings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	LowestPrices(ctx context.Context, weaponID int) ([]domain.Listing, error)
	History(ctx context.Context, weaponID, limit int) ([]domain.HistoryRecord, error)
	MyListings(ctx context.Context, playerID string) ([]domain.Listing, error)
	WeaponStats(ctx context.Context, weaponID int) (*domain.WeaponMarketStats, error)
}

type service struct {
	repo      repository.Market
	catalog   *catalog.Catalog
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a new market service
func NewService(repo repository.Market, c *catalog.Catalog, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		catalog:   c,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) publish(ctx context.Context, events ...event.Event) {
	if s.publisher == nil {
		return
	}
	for _, evt := range events {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}
