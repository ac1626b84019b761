package market

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// ValidatePrice rejects prices below the minimum tradeable unit or finer than it
func ValidatePrice(price decimal.Decimal) error {
	if price.LessThan(domain.MinTradeUnit) {
		return fmt.Errorf(ErrMsgPriceTooLowFmt, domain.ErrPriceTooLow, price.String())
	}
	if !price.Equal(price.Truncate(domain.CurrencyScale)) {
		return fmt.Errorf(ErrMsgPricePrecisionFmt, domain.ErrValidation, price.String(), domain.CurrencyScale)
	}
	return nil
}

// ListItem puts an owned item up for sale. The item stays in the seller's
// inventory until the listing is bought.
func (s *service) ListItem(ctx context.Context, sellerID, itemID string, price decimal.Decimal) (*domain.Listing, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgListItemCalled, LogFieldSellerID, sellerID, LogFieldItemID, itemID, LogFieldPrice, price.String())

	if err := ValidatePrice(price); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, domain.Internal(ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetPlayerForUpdate(ctx, sellerID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLockPlayer, err)
	}

	item, err := tx.GetItemForUpdate(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLockItem, err)
	}
	if item.OwnerID != sellerID {
		return nil, fmt.Errorf(ErrMsgNotOwnedFmt, domain.ErrItemNotOwned, itemID)
	}

	listed, err := tx.IsItemListed(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCheckListed, err)
	}
	if listed {
		return nil, fmt.Errorf(ErrMsgListedFmt, domain.ErrItemListed, itemID)
	}

	snapshot, err := s.snapshot(item)
	if err != nil {
		return nil, err
	}

	listing := &domain.Listing{
		ID:       uuid.NewString(),
		SellerID: sellerID,
		ItemID:   itemID,
		Item:     snapshot,
		Price:    price,
		Status:   domain.ListingActive,
		ListedAt: s.now().UTC(),
	}
	if err := tx.InsertListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextInsertListing, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Internal(ErrContextCommit, err)
	}

	log.Info(LogMsgItemListed,
		LogFieldListingID, listing.ID,
		LogFieldSellerID, sellerID,
		LogFieldWeaponID, snapshot.WeaponID,
		LogFieldPrice, price.String())

	s.publish(ctx, event.NewListingEvent(event.ListingCreated, listing))

	return listing, nil
}

// snapshot copies the tradeable attributes of an item at listing time
func (s *service) snapshot(item *domain.InventoryItem) (domain.ItemSnapshot, error) {
	w, err := s.catalog.Weapon(item.WeaponID)
	if err != nil {
		return domain.ItemSnapshot{}, err
	}
	return domain.ItemSnapshot{
		WeaponID:   w.ID,
		WeaponName: w.Name,
		Rarity:     w.Rarity,
		Grade:      item.Grade,
		Conta:      item.Conta,
		FinalPrice: item.FinalPrice,
		Passive:    item.Passive,
		Icon:       w.Icon,
	}, nil
}
