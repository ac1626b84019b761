package economy

import (
	"context"
	"fmt"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// lockOwnedItem locks the player and then the item, and checks the item is
// theirs and free to leave the inventory
func lockOwnedItem(ctx context.Context, tx repository.EconomyTx, playerID, itemID string) (*domain.Player, *domain.InventoryItem, error) {
	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextLockPlayer, err)
	}

	item, err := tx.GetItemForUpdate(ctx, itemID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextLockItem, err)
	}
	if item.OwnerID != playerID {
		return nil, nil, fmt.Errorf(ErrMsgItemNotOwnedFmt, domain.ErrItemNotOwned, itemID)
	}

	listed, err := tx.IsItemListed(ctx, itemID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextCheckListed, err)
	}
	if listed {
		return nil, nil, fmt.Errorf(ErrMsgItemListedFmt, domain.ErrItemListed, itemID)
	}

	return player, item, nil
}

// removeItem deletes the item and keeps the weapon's existing-copies counter in step
func removeItem(ctx context.Context, tx repository.EconomyTx, item *domain.InventoryItem) error {
	if err := tx.DeleteItem(ctx, item.ID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextDeleteItem, err)
	}
	if err := tx.RecordRemoval(ctx, item.WeaponID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextRecordRemoval, err)
	}
	return nil
}
