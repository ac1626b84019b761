package market

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// BuyListing moves money and ownership for an active listing in one
// transaction. Of two concurrent buyers exactly one wins; the other gets
// domain.ErrListingNotActive.
func (s *service) BuyListing(ctx context.Context, buyerID, listingID string) (*domain.PurchaseReceipt, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgBuyListingCalled, LogFieldBuyerID, buyerID, LogFieldListingID, listingID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, domain.Internal(ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	listing, err := tx.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadListing, err)
	}
	if listing.Status != domain.ListingActive {
		return nil, fmt.Errorf(ErrMsgNotActiveFmt, domain.ErrListingNotActive, listingID, listing.Status)
	}
	if listing.SellerID == buyerID {
		return nil, fmt.Errorf(ErrMsgSelfPurchaseFmt, domain.ErrSelfPurchase, listingID)
	}

	players, err := tx.LockPlayers(ctx, buyerID, listing.SellerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLockPlayers, err)
	}
	buyer, ok := players[buyerID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", ErrContextPlayerNotFound, domain.ErrPlayerNotFound)
	}
	if _, ok := players[listing.SellerID]; !ok {
		return nil, fmt.Errorf("%s: %w", ErrContextPlayerNotFound, domain.ErrPlayerNotFound)
	}

	if buyer.Balance.LessThan(listing.Price) {
		return nil, fmt.Errorf(ErrMsgInsufficientFmt, domain.ErrInsufficientFunds,
			buyer.Balance.StringFixed(domain.CurrencyScale), listing.Price.StringFixed(domain.CurrencyScale))
	}

	now := s.now().UTC()
	if err := tx.MarkListingSold(ctx, listingID, buyerID, now); err != nil {
		if errors.Is(err, domain.ErrListingNotActive) {
			log.Info(LogMsgBuyLostRace, LogFieldListingID, listingID, LogFieldBuyerID, buyerID)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextMarkSold, err)
	}
	if err := tx.TransferItem(ctx, listing.ItemID, listing.SellerID, buyerID, now); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextTransferItem, err)
	}

	buyerBalance, err := tx.AdjustBalance(ctx, buyerID, listing.Price.Neg())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextDebitBuyer, err)
	}
	sellerBalance, err := tx.AdjustBalance(ctx, listing.SellerID, listing.Price)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreditSeller, err)
	}

	record := &domain.HistoryRecord{
		ID:        uuid.NewString(),
		ListingID: listingID,
		Item:      listing.Item,
		Price:     listing.Price,
		SellerID:  listing.SellerID,
		BuyerID:   buyerID,
		SoldAt:    now,
	}
	if err := tx.InsertHistory(ctx, record); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextInsertHistory, err)
	}

	if err := tx.UnlockWeapon(ctx, buyerID, listing.Item.WeaponID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextUnlock, err)
	}
	if listing.Item.Icon != "" {
		if err := tx.UnlockIcon(ctx, buyerID, listing.Item.Icon); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextUnlock, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Internal(ErrContextCommit, err)
	}

	receipt := &domain.PurchaseReceipt{
		ListingID:     listingID,
		ItemID:        listing.ItemID,
		WeaponID:      listing.Item.WeaponID,
		Price:         listing.Price,
		SellerID:      listing.SellerID,
		BuyerID:       buyerID,
		BuyerBalance:  buyerBalance,
		SellerBalance: sellerBalance,
		PurchasedAt:   now,
	}

	log.Info(LogMsgListingSold,
		LogFieldListingID, listingID,
		LogFieldSellerID, listing.SellerID,
		LogFieldBuyerID, buyerID,
		LogFieldPrice, listing.Price.String())

	listing.Status = domain.ListingSold
	listing.BuyerID = &buyerID
	listing.ResolvedAt = &now
	s.publish(ctx,
		event.NewInventoryChangedEvent(domain.ChangeReasonTraded, listing.SellerID, buyerID),
		event.NewListingEvent(event.ListingSold, listing))

	return receipt, nil
}
