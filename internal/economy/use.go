package economy

import (
	"context"
	"fmt"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// UseItem consumes a border item and unlocks its border permanently. Using a
// second copy of an unlocked border still consumes the item.
func (s *service) UseItem(ctx context.Context, playerID, itemID string) (*domain.UseResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgUseItemCalled, LogFieldPlayerID, playerID, LogFieldItemID, itemID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, domain.Internal(ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	_, item, err := lockOwnedItem(ctx, tx, playerID, itemID)
	if err != nil {
		return nil, err
	}

	weapon, err := s.catalog.Weapon(item.WeaponID)
	if err != nil {
		return nil, err
	}
	if !weapon.NonGradable || weapon.BorderUnlockID == "" {
		return nil, fmt.Errorf(ErrMsgItemNotUsableFmt, domain.ErrItemNotUsable, weapon.ID)
	}

	unlocked, err := tx.UnlockBorder(ctx, playerID, weapon.BorderUnlockID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextUnlockBorder, err)
	}
	if err := removeItem(ctx, tx, item); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Internal(ErrContextCommit, err)
	}

	result := &domain.UseResult{
		ItemID:         item.ID,
		WeaponID:       weapon.ID,
		BorderUnlockID: weapon.BorderUnlockID,
		AlreadyOwned:   !unlocked,
	}

	if unlocked {
		log.Info(LogMsgItemUsed, LogFieldPlayerID, playerID, LogFieldItemID, item.ID, LogFieldBorderID, weapon.BorderUnlockID)
	} else {
		log.Info(LogMsgBorderOwned, LogFieldPlayerID, playerID, LogFieldItemID, item.ID, LogFieldBorderID, weapon.BorderUnlockID)
	}

	s.publish(ctx, domain.ChangeReasonUsed, playerID, event.NewItemUsedEvent(playerID, result))

	return result, nil
}
