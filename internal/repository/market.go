package repository

import (
	"context"
	"time"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// Market defines the interface for market persistence
type Market interface {
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
	ListActive(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	LowestPrices(ctx context.Context, weaponID, limit int) ([]domain.Listing, error)
	History(ctx context.Context, weaponID, limit int) ([]domain.HistoryRecord, error)
	ListingsBySeller(ctx context.Context, sellerID string) ([]domain.Listing, error)
	WeaponMarketStats(ctx context.Context, weaponID, recentSales int) (*domain.WeaponMarketStats, error)
	BeginTx(ctx context.Context) (MarketTx, error)
}

// MarketTx defines the interface for market transactions
type MarketTx interface {
	PlayerTx
	ItemTx
	// InsertListing fails with domain.ErrItemListed if the item already has an active listing
	InsertListing(ctx context.Context, listing *domain.Listing) error
	GetListing(ctx context.Context, listingID string) (*domain.Listing, error)
	// MarkListingSold only succeeds while the listing is active; otherwise it
	// returns domain.ErrListingNotActive.
	MarkListingSold(ctx context.Context, listingID, buyerID string, at time.Time) error
	MarkListingCancelled(ctx context.Context, listingID string, at time.Time) error
	// TransferItem only succeeds while fromID owns the item
	TransferItem(ctx context.Context, itemID, fromID, toID string, at time.Time) error
	InsertHistory(ctx context.Context, record *domain.HistoryRecord) error
	UnlockIcon(ctx context.Context, playerID, icon string) error
}
