package economy

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// SalePrice is what the system pays for an item: finalPrice * (1 + bonus/100)
func SalePrice(finalPrice decimal.Decimal, sellBonusPercent float64) decimal.Decimal {
	factor := decimal.NewFromFloat(1 + sellBonusPercent/100)
	return finalPrice.Mul(factor).Round(SellPriceScale)
}

func (s *service) SellItem(ctx context.Context, playerID, itemID string) (*domain.SaleResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSellItemCalled, LogFieldPlayerID, playerID, LogFieldItemID, itemID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, domain.Internal(ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, item, err := lockOwnedItem(ctx, tx, playerID, itemID)
	if err != nil {
		return nil, err
	}

	price := SalePrice(item.FinalPrice, player.Stats.SellBonusPercent)

	if err := removeItem(ctx, tx, item); err != nil {
		return nil, err
	}
	balance, err := tx.AdjustBalance(ctx, playerID, price)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCredit, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Internal(ErrContextCommit, err)
	}

	result := &domain.SaleResult{
		ItemID:   item.ID,
		WeaponID: item.WeaponID,
		Price:    price,
		Balance:  balance,
	}

	log.Info(LogMsgItemSold,
		LogFieldPlayerID, playerID,
		LogFieldItemID, item.ID,
		LogFieldWeaponID, item.WeaponID,
		LogFieldPrice, price.String())

	s.publish(ctx, domain.ChangeReasonSold, playerID, event.NewItemSoldEvent(playerID, result))

	return result, nil
}
