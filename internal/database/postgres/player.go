package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// PlayerRepository implements player, unlock and weapon-stat persistence
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts the player, a zeroed stats row and the starting unlocks atomically
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player, unlocks domain.Unlocks) error {
	id, err := parsePlayerUUID(player.ID)
	if err != nil {
		return err
	}

	t, err := beginTx(ctx, r.db)
	if err != nil {
		return domain.Internal(ErrMsgFailedToInsertPlayer, err)
	}
	defer SafeRollback(ctx, t.tx)

	_, err = t.tx.Exec(ctx, `
		INSERT INTO players (player_id, username, balance, experience, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`,
		id, player.Username, player.Balance, player.Experience, player.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, ConstraintPlayersUsername) {
			return fmt.Errorf("%w: %s", domain.ErrPlayerExists, player.Username)
		}
		return domain.Internal(ErrMsgFailedToInsertPlayer, err)
	}

	if err := saveStats(ctx, t.tx, id, player.Stats); err != nil {
		return err
	}

	for _, weaponID := range unlocks.Weapons {
		if err := t.UnlockWeapon(ctx, player.ID, weaponID); err != nil {
			return err
		}
	}
	for _, icon := range unlocks.Icons {
		if err := t.UnlockIcon(ctx, player.ID, icon); err != nil {
			return err
		}
	}
	for _, border := range unlocks.Borders {
		if _, err := t.UnlockBorder(ctx, player.ID, border); err != nil {
			return err
		}
	}

	if err := t.Commit(ctx); err != nil {
		return domain.Internal(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// GetPlayer loads a player with its derived stats
func (r *PlayerRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayer(ctx, r.db, playerID, false)
}

// GetUnlocks loads the weapon, icon and border sets of a player
func (r *PlayerRepository) GetUnlocks(ctx context.Context, playerID string) (*domain.Unlocks, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	unlocks := &domain.Unlocks{Weapons: []int{}, Icons: []string{}, Borders: []string{}}

	weaponRows, err := r.db.Query(ctx,
		`SELECT weapon_id FROM player_unlocked_weapons WHERE player_id = $1 ORDER BY weapon_id`, id)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToGetUnlocks, err)
	}
	unlocks.Weapons, err = pgx.CollectRows(weaponRows, pgx.RowTo[int])
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToGetUnlocks, err)
	}

	iconRows, err := r.db.Query(ctx,
		`SELECT icon FROM player_unlocked_icons WHERE player_id = $1 ORDER BY unlocked_at, icon`, id)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToGetUnlocks, err)
	}
	unlocks.Icons, err = pgx.CollectRows(iconRows, pgx.RowTo[string])
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToGetUnlocks, err)
	}

	borderRows, err := r.db.Query(ctx,
		`SELECT border_id FROM player_unlocked_borders WHERE player_id = $1 ORDER BY unlocked_at, border_id`, id)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToGetUnlocks, err)
	}
	unlocks.Borders, err = pgx.CollectRows(borderRows, pgx.RowTo[string])
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToGetUnlocks, err)
	}

	return unlocks, nil
}

// GetInventory lists the items a player owns, newest first
func (r *PlayerRepository) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items
		WHERE owner_id = $1
		ORDER BY acquired_at DESC, item_id`, id)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToGetInventory, err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, domain.Internal(ErrMsgFailedToGetInventory, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(ErrMsgFailedToGetInventory, err)
	}
	return items, nil
}

// ListPlayerIDs pages player ids by primary key
func (r *PlayerRepository) ListPlayerIDs(ctx context.Context, after string, limit int) ([]string, error) {
	cursor := uuid.Nil
	if after != "" {
		id, err := parsePlayerUUID(after)
		if err != nil {
			return nil, err
		}
		cursor = id
	}

	rows, err := r.db.Query(ctx, `
		SELECT player_id
		FROM players
		WHERE player_id > $1
		ORDER BY player_id
		LIMIT $2`, cursor, limit)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToListPlayers, err)
	}
	ids, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var id uuid.UUID
		err := row.Scan(&id)
		return id.String(), err
	})
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToListPlayers, err)
	}
	return ids, nil
}

// SaveStats overwrites the derived stats snapshot of a player
func (r *PlayerRepository) SaveStats(ctx context.Context, playerID string, stats domain.PassiveAggregate) error {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}
	return saveStats(ctx, r.db, id, stats)
}

func saveStats(ctx context.Context, q querier, id uuid.UUID, stats domain.PassiveAggregate) error {
	_, err := q.Exec(ctx, `
		INSERT INTO player_stats (
			player_id, luck, grade_bonus, money_per_second, money_per_second_percent,
			box_discount_percent, sell_bonus_percent, exp_bonus_percent, recalculated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (player_id) DO UPDATE SET
			luck = EXCLUDED.luck,
			grade_bonus = EXCLUDED.grade_bonus,
			money_per_second = EXCLUDED.money_per_second,
			money_per_second_percent = EXCLUDED.money_per_second_percent,
			box_discount_percent = EXCLUDED.box_discount_percent,
			sell_bonus_percent = EXCLUDED.sell_bonus_percent,
			exp_bonus_percent = EXCLUDED.exp_bonus_percent,
			recalculated_at = EXCLUDED.recalculated_at`,
		id, stats.Luck, stats.GradeBonus, stats.MoneyPerSecond, stats.MoneyPerSecondPercent,
		stats.BoxDiscountPercent, stats.SellBonusPercent, stats.ExpBonusPercent)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPlayerNotFound
		}
		return domain.Internal(ErrMsgFailedToSaveStats, err)
	}
	return nil
}

const weaponStatsColumns = `weapon_id, total_openings, current_existing, conta_openings, last_opened_at`

func scanWeaponStats(row pgx.Row) (*domain.WeaponStats, error) {
	var s domain.WeaponStats
	if err := row.Scan(&s.WeaponID, &s.TotalOpenings, &s.CurrentExisting, &s.ContaOpenings, &s.LastOpenedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// SeedWeaponStats inserts zeroed counter rows for weapons that have none
// and reports how many were created.
func (r *PlayerRepository) SeedWeaponStats(ctx context.Context, weaponIDs []int) (int, error) {
	if len(weaponIDs) == 0 {
		return 0, nil
	}
	ids := make([]int32, len(weaponIDs))
	for i, id := range weaponIDs {
		ids[i] = int32(id)
	}
	tag, err := r.db.Exec(ctx, `
		INSERT INTO weapon_stats (weapon_id)
		SELECT unnest($1::int[])
		ON CONFLICT (weapon_id) DO NOTHING`, ids)
	if err != nil {
		return 0, domain.Internal(ErrMsgFailedToSeedWeaponStats, err)
	}
	return int(tag.RowsAffected()), nil
}

// GetWeaponStats returns the drop counters of one weapon
func (r *PlayerRepository) GetWeaponStats(ctx context.Context, weaponID int) (*domain.WeaponStats, error) {
	stats, err := scanWeaponStats(r.db.QueryRow(ctx,
		`SELECT `+weaponStatsColumns+` FROM weapon_stats WHERE weapon_id = $1`, weaponID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no openings recorded for weapon %d", domain.ErrNotFound, weaponID)
		}
		return nil, domain.Internal(ErrMsgFailedToGetWeaponStats, err)
	}
	return stats, nil
}

// ListWeaponStats returns every weapon counter row
func (r *PlayerRepository) ListWeaponStats(ctx context.Context) ([]domain.WeaponStats, error) {
	rows, err := r.db.Query(ctx, `SELECT `+weaponStatsColumns+` FROM weapon_stats ORDER BY weapon_id`)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToListWeaponStats, err)
	}
	defer rows.Close()

	out := []domain.WeaponStats{}
	for rows.Next() {
		s, err := scanWeaponStats(rows)
		if err != nil {
			return nil, domain.Internal(ErrMsgFailedToListWeaponStats, err)
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(ErrMsgFailedToListWeaponStats, err)
	}
	return out, nil
}

var (
	_ repository.Player          = (*PlayerRepository)(nil)
	_ repository.WeaponStats     = (*PlayerRepository)(nil)
	_ repository.PlayerDirectory = (*PlayerRepository)(nil)
)
