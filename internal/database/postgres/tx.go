package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// pgTx implements the balance, unlock and inventory operations every
// money-moving transaction shares. Feature transactions embed it.
type pgTx struct {
	tx pgx.Tx
}

func beginTx(ctx context.Context, db *pgxpool.Pool) (*pgTx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &pgTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *pgTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction. After Commit it returns domain.ErrTxClosed.
func (t *pgTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return err
	}
	return nil
}

func (t *pgTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayer(ctx, t.tx, playerID, true)
}

// LockPlayers locks the given players in ascending id order. Unknown ids are
// absent from the result.
func (t *pgTx) LockPlayers(ctx context.Context, playerIDs ...string) (map[string]*domain.Player, error) {
	seen := make(map[uuid.UUID]bool, len(playerIDs))
	ids := make([]uuid.UUID, 0, len(playerIDs))
	for _, raw := range playerIDs {
		id, err := parsePlayerUUID(raw)
		if err != nil {
			return nil, err
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	query := `SELECT ` + playerColumns + playerFrom + `
		WHERE p.player_id = ANY($1)
		ORDER BY p.player_id
		FOR UPDATE OF p`
	rows, err := t.tx.Query(ctx, query, ids)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToLockPlayers, err)
	}
	defer rows.Close()

	players := make(map[string]*domain.Player, len(ids))
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, domain.Internal(ErrMsgFailedToLockPlayers, err)
		}
		players[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(ErrMsgFailedToLockPlayers, err)
	}
	return players, nil
}

// AdjustBalance adds delta to the balance. The balance CHECK turns an
// overdraft into ErrInsufficientFunds.
func (t *pgTx) AdjustBalance(ctx context.Context, playerID string, delta decimal.Decimal) (decimal.Decimal, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = t.tx.QueryRow(ctx, `
		UPDATE players
		SET balance = balance + $2, updated_at = NOW()
		WHERE player_id = $1
		RETURNING balance`, id, delta).Scan(&balance)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return decimal.Zero, domain.ErrPlayerNotFound
		case isCheckViolation(err, ConstraintPlayersBalance):
			return decimal.Zero, fmt.Errorf("%w: balance cannot go below zero", domain.ErrInsufficientFunds)
		}
		return decimal.Zero, domain.Internal(ErrMsgFailedToAdjustBalance, err)
	}
	return balance, nil
}

func (t *pgTx) UnlockWeapon(ctx context.Context, playerID string, weaponID int) error {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO player_unlocked_weapons (player_id, weapon_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, id, weaponID)
	if err != nil {
		return domain.Internal(ErrMsgFailedToUnlockWeapon, err)
	}
	return nil
}

func (t *pgTx) UnlockIcon(ctx context.Context, playerID, icon string) error {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO player_unlocked_icons (player_id, icon)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, id, icon)
	if err != nil {
		return domain.Internal(ErrMsgFailedToUnlockIcon, err)
	}
	return nil
}

// UnlockBorder returns false when the border was already unlocked
func (t *pgTx) UnlockBorder(ctx context.Context, playerID, borderID string) (bool, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return false, err
	}
	tag, err := t.tx.Exec(ctx, `
		INSERT INTO player_unlocked_borders (player_id, border_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, id, borderID)
	if err != nil {
		return false, domain.Internal(ErrMsgFailedToUnlockBorder, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *pgTx) AddExperience(ctx context.Context, playerID string, exp int64) error {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE players SET experience = experience + $2, updated_at = NOW()
		WHERE player_id = $1`, id, exp)
	if err != nil {
		return domain.Internal(ErrMsgFailedToAddExperience, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (t *pgTx) GetItemForUpdate(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	id, err := parseItemUUID(itemID)
	if err != nil {
		return nil, err
	}
	item, err := scanItem(t.tx.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM inventory_items WHERE item_id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, domain.Internal(ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

func (t *pgTx) IsItemListed(ctx context.Context, itemID string) (bool, error) {
	id, err := parseItemUUID(itemID)
	if err != nil {
		return false, err
	}
	var listed bool
	err = t.tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM market_listings WHERE item_id = $1 AND status = 'active'
		)`, id).Scan(&listed)
	if err != nil {
		return false, domain.Internal(ErrMsgFailedToCheckListing, err)
	}
	return listed, nil
}

func (t *pgTx) InsertItem(ctx context.Context, item *domain.InventoryItem) error {
	id, err := parseItemUUID(item.ID)
	if err != nil {
		return err
	}
	owner, err := parsePlayerUUID(item.OwnerID)
	if err != nil {
		return err
	}
	passive, err := marshalPassive(item.Passive)
	if err != nil {
		return domain.Internal(ErrMsgFailedToInsertItem, err)
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO inventory_items (item_id, owner_id, weapon_id, grade, conta, final_price, passive, acquired_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, owner, item.WeaponID, gradeToText(item.Grade), item.Conta, item.FinalPrice, passive, item.AcquiredAt)
	if err != nil {
		return domain.Internal(ErrMsgFailedToInsertItem, err)
	}
	return nil
}

func (t *pgTx) DeleteItem(ctx context.Context, itemID string) error {
	id, err := parseItemUUID(itemID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1`, id)
	if err != nil {
		return domain.Internal(ErrMsgFailedToDeleteItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// RecordOpening bumps the opening, existing and conta counters of a weapon
func (t *pgTx) RecordOpening(ctx context.Context, weaponID int, conta bool) error {
	var contaInc int64
	if conta {
		contaInc = 1
	}
	_, err := t.tx.Exec(ctx, `
		INSERT INTO weapon_stats (weapon_id, total_openings, current_existing, conta_openings, last_opened_at)
		VALUES ($1, 1, 1, $2, NOW())
		ON CONFLICT (weapon_id) DO UPDATE SET
			total_openings = weapon_stats.total_openings + 1,
			current_existing = weapon_stats.current_existing + 1,
			conta_openings = weapon_stats.conta_openings + EXCLUDED.conta_openings,
			last_opened_at = EXCLUDED.last_opened_at`, weaponID, contaInc)
	if err != nil {
		return domain.Internal(ErrMsgFailedToRecordOpening, err)
	}
	return nil
}

// RecordRemoval decrements the existing-copies counter of a weapon
func (t *pgTx) RecordRemoval(ctx context.Context, weaponID int) error {
	_, err := t.tx.Exec(ctx, `
		UPDATE weapon_stats
		SET current_existing = GREATEST(current_existing - 1, 0)
		WHERE weapon_id = $1`, weaponID)
	if err != nil {
		return domain.Internal(ErrMsgFailedToRecordRemoval, err)
	}
	return nil
}

var (
	_ repository.LootboxTx = (*pgTx)(nil)
	_ repository.EconomyTx = (*pgTx)(nil)
)
