package repository

import (
	"context"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// Lootbox defines the interface for box opening persistence
type Lootbox interface {
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	BeginTx(ctx context.Context) (LootboxTx, error)
}

// LootboxTx defines the interface for box opening transactions
type LootboxTx interface {
	PlayerTx
	InsertItem(ctx context.Context, item *domain.InventoryItem) error
	// RecordOpening bumps the opening, existing and conta counters of a weapon
	RecordOpening(ctx context.Context, weaponID int, conta bool) error
	AddExperience(ctx context.Context, playerID string, exp int64) error
}
