package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// PlayerTx holds the balance operations shared by every money-moving transaction
type PlayerTx interface {
	Tx
	// GetPlayerForUpdate loads a player and locks the row until the transaction ends
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	// LockPlayers locks several players in ascending id order
	LockPlayers(ctx context.Context, playerIDs ...string) (map[string]*domain.Player, error)
	// AdjustBalance adds delta to the balance and returns the new balance
	AdjustBalance(ctx context.Context, playerID string, delta decimal.Decimal) (decimal.Decimal, error)
	UnlockWeapon(ctx context.Context, playerID string, weaponID int) error
}

// ItemTx holds the inventory operations shared by economy and market transactions
type ItemTx interface {
	GetItemForUpdate(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	IsItemListed(ctx context.Context, itemID string) (bool, error)
}
