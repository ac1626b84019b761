package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/database"
	"github.com/osse101/LootForge_Go/internal/database/postgres"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/lootbox"
	"github.com/osse101/LootForge_Go/internal/passive"
	"github.com/osse101/LootForge_Go/internal/player"
)

const (
	defaultSeedPlayers = 5
	defaultSeedOpens   = 10
	seedBalance        = "100000"
	seedBoxID          = 1
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Create demo players and open boxes for them [players] [opens]"
}

func (c *SeedCommand) Run(args []string) error {
	players, opens := defaultSeedPlayers, defaultSeedOpens
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid player count: %s", args[0])
		}
		players = n
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid open count: %s", args[1])
		}
		opens = n
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	PrintInfo("Connecting to database: %s", redactPassword(dbURL()))
	pool, err := database.NewPool(dbURL(), 4, time.Minute, 5*time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()

	items := catalog.Default()
	playerRepo := postgres.NewPlayerRepository(pool)
	gen, err := lootbox.NewGenerator(items, nil, 64)
	if err != nil {
		return err
	}

	playerSvc := player.NewService(playerRepo, playerRepo, items, player.Config{StartingBalance: decimal.RequireFromString(seedBalance)})
	boxes := lootbox.NewService(postgres.NewLootboxRepository(pool), items, gen, nil)
	stats := passive.NewService(playerRepo, passive.NewAggregator(items), passive.CacheConfig{})

	stamp := time.Now().Unix() % 100000
	for i := 0; i < players; i++ {
		username := fmt.Sprintf("demo_%d_%d", stamp, i)
		p, err := playerSvc.RegisterPlayer(ctx, username)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				PrintWarning("%s already exists, skipping", username)
				continue
			}
			return err
		}

		drops := 0
		for j := 0; j < opens; j++ {
			if _, err := boxes.OpenBox(ctx, p.ID, seedBoxID); err != nil {
				if errors.Is(err, domain.ErrInsufficientFunds) {
					break
				}
				return err
			}
			drops++
		}

		if _, err := stats.Recalculate(ctx, p.ID); err != nil {
			return err
		}
		PrintSuccess("%s (%s): %d drops", username, p.ID, drops)
	}

	PrintSuccess("Seeding complete")
	return nil
}
