package repository

import "context"

// Economy defines the interface for sell-to-system and item use persistence
type Economy interface {
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx defines the interface for economy transactions
type EconomyTx interface {
	PlayerTx
	ItemTx
	DeleteItem(ctx context.Context, itemID string) error
	// RecordRemoval decrements the existing-copies counter of a weapon
	RecordRemoval(ctx context.Context, weaponID int) error
	// UnlockBorder returns false when the border was already unlocked
	UnlockBorder(ctx context.Context, playerID, borderID string) (bool, error)
}
