package bootstrap

import (
	"fmt"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/config"
	"github.com/osse101/LootForge_Go/internal/economy"
	"github.com/osse101/LootForge_Go/internal/lootbox"
	"github.com/osse101/LootForge_Go/internal/market"
	"github.com/osse101/LootForge_Go/internal/passive"
	"github.com/osse101/LootForge_Go/internal/player"
	"github.com/osse101/LootForge_Go/internal/server"
	"github.com/osse101/LootForge_Go/internal/worker"
)

// Background holds the worker pool and the recalculation scheduler that
// drains inventory change events.
type Background struct {
	Pool      *worker.Pool
	Scheduler *passive.Scheduler
}

// InitializeServices builds every domain service on top of the repositories
// and the event system.
func InitializeServices(cfg *config.Config, repos *Repositories, c *catalog.Catalog, events *EventSystem) (server.Services, *Background, error) {
	gen, err := lootbox.NewGenerator(c, nil, cfg.DistributionCacheSize)
	if err != nil {
		return server.Services{}, nil, fmt.Errorf("failed to create loot generator: %w", err)
	}

	passiveSvc := passive.NewService(repos.Player, passive.NewAggregator(c), passive.CacheConfig{
		Size: cfg.StatsCacheSize,
		TTL:  cfg.StatsCacheTTL,
	})

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize).WithJobTimeout(cfg.JobTimeout)
	scheduler := passive.NewScheduler(passiveSvc, pool, events.RecalcDeadLetter, passive.SchedulerConfig{
		MaxAttempts: cfg.RecalcAttempts,
		RetryDelay:  cfg.RecalcRetryDelay,
	}).WithPlayers(repos.Player)

	svc := server.Services{
		Catalog: c,
		Lootbox: lootbox.NewService(repos.Lootbox, c, gen, events.Publisher),
		Economy: economy.NewService(repos.Economy, c, events.Publisher),
		Market:  market.NewService(repos.Market, c, events.Publisher),
		Player:  player.NewService(repos.Player, repos.Player, c, player.Config{StartingBalance: cfg.StartingBalance}),
		Passive: passiveSvc,
	}

	return svc, &Background{Pool: pool, Scheduler: scheduler}, nil
}
