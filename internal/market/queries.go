package market

import (
	"context"
	"fmt"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// NormalizeFilter applies the default and maximum page size
func NormalizeFilter(f domain.ListingFilter) domain.ListingFilter {
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultListingLimit
	case f.Limit > MaxListingLimit:
		f.Limit = MaxListingLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Listing returns one listing in any state
func (s *service) Listing(ctx context.Context, listingID string) (*domain.Listing, error) {
	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadListing, err)
	}
	return listing, nil
}

// Listings returns active listings, newest first
func (s *service) Listings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	filter = NormalizeFilter(filter)
	if filter.WeaponID != 0 {
		if _, err := s.catalog.Weapon(filter.WeaponID); err != nil {
			return nil, err
		}
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, fmt.Errorf("%w: min_price above max_price", domain.ErrValidation)
	}

	listings, err := s.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextQueryListings, err)
	}
	return listings, nil
}

// LowestPrices returns the cheapest active listings of a weapon
func (s *service) LowestPrices(ctx context.Context, weaponID int) ([]domain.Listing, error) {
	if _, err := s.catalog.Weapon(weaponID); err != nil {
		return nil, err
	}
	listings, err := s.repo.LowestPrices(ctx, weaponID, LowestPricesLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextQueryListings, err)
	}
	return listings, nil
}

// History returns the most recent sales of a weapon
func (s *service) History(ctx context.Context, weaponID, limit int) ([]domain.HistoryRecord, error) {
	if _, err := s.catalog.Weapon(weaponID); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxListingLimit:
		limit = MaxListingLimit
	}
	records, err := s.repo.History(ctx, weaponID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextQueryHistory, err)
	}
	return records, nil
}

// MyListings returns every listing a player has created, in any state
func (s *service) MyListings(ctx context.Context, playerID string) ([]domain.Listing, error) {
	listings, err := s.repo.ListingsBySeller(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextQueryListings, err)
	}
	return listings, nil
}

// WeaponStats summarizes active prices and recent sales of a weapon
func (s *service) WeaponStats(ctx context.Context, weaponID int) (*domain.WeaponMarketStats, error) {
	if _, err := s.catalog.Weapon(weaponID); err != nil {
		return nil, err
	}
	stats, err := s.repo.WeaponMarketStats(ctx, weaponID, RecentSalesLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextQueryStats, err)
	}
	return stats, nil
}
