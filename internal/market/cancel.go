package market

import (
	"context"
	"fmt"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// CancelListing withdraws an active listing. Only its seller may cancel it,
// and no money or ownership moves.
func (s *service) CancelListing(ctx context.Context, playerID, listingID string) (*domain.Listing, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, domain.Internal(ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	listing, err := tx.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadListing, err)
	}
	if listing.SellerID != playerID {
		return nil, fmt.Errorf(ErrMsgNotSellerFmt, domain.ErrNotSeller, listingID)
	}
	if listing.Status != domain.ListingActive {
		return nil, fmt.Errorf(ErrMsgNotActiveFmt, domain.ErrListingNotActive, listingID, listing.Status)
	}

	now := s.now().UTC()
	if err := tx.MarkListingCancelled(ctx, listingID, now); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextMarkCancelled, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Internal(ErrContextCommit, err)
	}

	listing.Status = domain.ListingCancelled
	listing.ResolvedAt = &now

	logger.FromContext(ctx).Info(LogMsgListingCancelled, LogFieldListingID, listingID, LogFieldSellerID, playerID)
	s.publish(ctx, event.NewListingEvent(event.ListingCancelled, listing))

	return listing, nil
}
