package passive

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/LootForge_Go/internal/concurrency"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// Service keeps player derived stats in line with their inventories
type Service interface {
	// Recalculate rebuilds, persists and caches a player's stats
	Recalculate(ctx context.Context, playerID string) (*domain.PassiveAggregate, error)
	// GetStats returns cached stats, falling back to the stored snapshot
	GetStats(ctx context.Context, playerID string) (*domain.PassiveAggregate, error)
}

// CacheConfig sizes the stats cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type service struct {
	repo       repository.Player
	aggregator *Aggregator
	cache      *statsCache
	locks      *concurrency.LockManager
}

// NewService creates the passive stats service
func NewService(repo repository.Player, aggregator *Aggregator, cacheCfg CacheConfig) Service {
	return &service{
		repo:       repo,
		aggregator: aggregator,
		cache:      newStatsCache(cacheCfg.Size, cacheCfg.TTL),
		locks:      concurrency.NewLockManager(),
	}
}

// Recalculate runs under a per-player lock so that two overlapping runs
// cannot persist their results out of order.
func (s *service) Recalculate(ctx context.Context, playerID string) (*domain.PassiveAggregate, error) {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	items, err := s.repo.GetInventory(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadInventory, err)
	}
	unlocks, err := s.repo.GetUnlocks(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadUnlocks, err)
	}

	stats := s.aggregator.Aggregate(items, unlocks)

	if err := s.repo.SaveStats(ctx, playerID, stats); err != nil {
		s.cache.Invalidate(playerID)
		return nil, fmt.Errorf("%s: %w", ErrContextSaveStats, err)
	}
	s.cache.Set(playerID, stats)

	logger.FromContext(ctx).Debug(LogMsgRecalculated,
		LogFieldPlayerID, playerID,
		"items", len(items),
		"luck", stats.Luck,
		"money_per_second", stats.MoneyPerSecond)

	return &stats, nil
}

func (s *service) GetStats(ctx context.Context, playerID string) (*domain.PassiveAggregate, error) {
	if stats, ok := s.cache.Get(playerID); ok {
		return &stats, nil
	}

	// a recalculation in flight would otherwise race this fill with an older snapshot
	unlock := s.locks.Lock(playerID)
	defer unlock()
	if stats, ok := s.cache.Get(playerID); ok {
		return &stats, nil
	}

	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(playerID, player.Stats)
	stats := player.Stats
	return &stats, nil
}
