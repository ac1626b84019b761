package repository

import (
	"context"
	"errors"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
)

const LogMsgRollbackFailed = "Failed to rollback transaction"

// SafeRollback rolls back tx for use in a defer. Rolling back a committed
// transaction is expected and not logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, domain.ErrTxClosed) {
		return
	}
	logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
}
