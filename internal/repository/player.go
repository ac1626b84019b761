package repository

import (
	"context"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// Player defines the interface for player and derived-stats persistence
type Player interface {
	CreatePlayer(ctx context.Context, player *domain.Player, unlocks domain.Unlocks) error
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetUnlocks(ctx context.Context, playerID string) (*domain.Unlocks, error)
	GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error)
	SaveStats(ctx context.Context, playerID string, stats domain.PassiveAggregate) error
}

// WeaponStats defines the interface for weapon drop counters
type WeaponStats interface {
	GetWeaponStats(ctx context.Context, weaponID int) (*domain.WeaponStats, error)
	ListWeaponStats(ctx context.Context) ([]domain.WeaponStats, error)
}

// PlayerDirectory pages through every registered player id in ascending order
type PlayerDirectory interface {
	// ListPlayerIDs returns up to limit ids greater than after; an empty after starts from the beginning
	ListPlayerIDs(ctx context.Context, after string, limit int) ([]string, error)
}
