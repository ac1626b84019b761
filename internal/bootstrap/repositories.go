package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LootForge_Go/internal/database/postgres"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Player  *postgres.PlayerRepository
	Lootbox *postgres.LootboxRepository
	Economy *postgres.EconomyRepository
	Market  *postgres.MarketRepository
}

// InitializeRepositories creates all repository implementations over one pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:  postgres.NewPlayerRepository(dbPool),
		Lootbox: postgres.NewLootboxRepository(dbPool),
		Economy: postgres.NewEconomyRepository(dbPool),
		Market:  postgres.NewMarketRepository(dbPool),
	}
}
