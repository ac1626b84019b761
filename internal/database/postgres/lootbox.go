package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// LootboxRepository implements box opening persistence
type LootboxRepository struct {
	db *pgxpool.Pool
}

// NewLootboxRepository creates a new LootboxRepository
func NewLootboxRepository(db *pgxpool.Pool) *LootboxRepository {
	return &LootboxRepository{db: db}
}

// GetPlayer loads a player without locking
func (r *LootboxRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayer(ctx, r.db, playerID, false)
}

// BeginTx starts a box opening transaction
func (r *LootboxRepository) BeginTx(ctx context.Context) (repository.LootboxTx, error) {
	t, err := beginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return t, nil
}

var _ repository.Lootbox = (*LootboxRepository)(nil)
