package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LootForge_Go/internal/repository"
)

// EconomyRepository implements sell-to-system and item use persistence
type EconomyRepository struct {
	db *pgxpool.Pool
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

// BeginTx starts an economy transaction
func (r *EconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	t, err := beginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return t, nil
}

var _ repository.Economy = (*EconomyRepository)(nil)
