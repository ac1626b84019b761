package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// ---- Common Helper Functions ----

// parsePlayerUUID parses a player ID string with a consistent error.
func parsePlayerUUID(playerID string) (uuid.UUID, error) {
	u, err := uuid.Parse(playerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrInvalidPlayerID, playerID)
	}
	return u, nil
}

// parseItemUUID maps a malformed id to not-found; no row can ever match it.
func parseItemUUID(itemID string) (uuid.UUID, error) {
	u, err := uuid.Parse(itemID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return u, nil
}

func parseListingUUID(listingID string) (uuid.UUID, error) {
	u, err := uuid.Parse(listingID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrListingNotFound, listingID)
	}
	return u, nil
}

// isUniqueViolation reports whether err is a unique violation of the named constraint.
// An empty constraint matches any unique violation.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation
}

func isCheckViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeCheckViolation && pgErr.ConstraintName == constraint
}

// gradeToText converts an optional grade to a nullable column value
func gradeToText(g *domain.Grade) *string {
	if g == nil {
		return nil
	}
	s := string(*g)
	return &s
}

func textToGrade(s *string) *domain.Grade {
	if s == nil || *s == "" {
		return nil
	}
	g := domain.Grade(*s)
	return &g
}

// marshalPassive encodes a passive for a JSONB column; nil stays SQL NULL.
func marshalPassive(p *domain.Passive) ([]byte, error) {
	if p == nil || p.Effect == nil {
		return nil, nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPassive, err)
	}
	return data, nil
}

func unmarshalPassive(data []byte) (*domain.Passive, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var p domain.Passive
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalPassive, err)
	}
	if p.Effect == nil {
		return nil, nil
	}
	return &p, nil
}

func unmarshalSnapshot(data []byte) (domain.ItemSnapshot, error) {
	var snap domain.ItemSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalSnapshot, err)
	}
	return snap, nil
}

// ---- End Common Helper Functions ----

const playerColumns = `
	p.player_id, p.username, p.balance, p.experience, p.created_at,
	COALESCE(s.luck, 0), COALESCE(s.grade_bonus, 0),
	COALESCE(s.money_per_second, 0), COALESCE(s.money_per_second_percent, 0),
	COALESCE(s.box_discount_percent, 0), COALESCE(s.sell_bonus_percent, 0),
	COALESCE(s.exp_bonus_percent, 0)`

const playerFrom = `
	FROM players p
	LEFT JOIN player_stats s ON s.player_id = p.player_id`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var (
		p  domain.Player
		id uuid.UUID
	)
	err := row.Scan(
		&id, &p.Username, &p.Balance, &p.Experience, &p.CreatedAt,
		&p.Stats.Luck, &p.Stats.GradeBonus,
		&p.Stats.MoneyPerSecond, &p.Stats.MoneyPerSecondPercent,
		&p.Stats.BoxDiscountPercent, &p.Stats.SellBonusPercent,
		&p.Stats.ExpBonusPercent,
	)
	if err != nil {
		return nil, err
	}
	p.ID = id.String()
	return &p, nil
}

// getPlayer loads a player, optionally locking the players row
func getPlayer(ctx context.Context, q querier, playerID string, forUpdate bool) (*domain.Player, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + playerColumns + playerFrom + ` WHERE p.player_id = $1`
	op := ErrMsgFailedToGetPlayer
	if forUpdate {
		query += ` FOR UPDATE OF p`
		op = ErrMsgFailedToLockPlayer
	}

	player, err := scanPlayer(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, domain.Internal(op, err)
	}
	return player, nil
}

const itemColumns = `item_id, owner_id, weapon_id, grade, conta, final_price, passive, acquired_at`

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var (
		item    domain.InventoryItem
		id, own uuid.UUID
		grade   *string
		passive []byte
	)
	if err := row.Scan(&id, &own, &item.WeaponID, &grade, &item.Conta, &item.FinalPrice, &passive, &item.AcquiredAt); err != nil {
		return nil, err
	}
	p, err := unmarshalPassive(passive)
	if err != nil {
		return nil, err
	}
	item.ID = id.String()
	item.OwnerID = own.String()
	item.Grade = textToGrade(grade)
	item.Passive = p
	return &item, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s literally anywhere in the
// value. Use it with ESCAPE '\'.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
