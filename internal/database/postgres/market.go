package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// MarketRepository implements listing and sale history persistence
type MarketRepository struct {
	db *pgxpool.Pool
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

// marketTx adds listing operations to the shared transaction
type marketTx struct {
	*pgTx
}

// BeginTx starts a market transaction
func (r *MarketRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	t, err := beginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	return &marketTx{pgTx: t}, nil
}

const listingColumns = `listing_id, seller_id, item_id, item_snapshot, price, status, buyer_id, listed_at, resolved_at`

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var (
		l                  domain.Listing
		id, seller, itemID uuid.UUID
		buyer              *uuid.UUID
		snapshot           []byte
		status             string
	)
	if err := row.Scan(&id, &seller, &itemID, &snapshot, &l.Price, &status, &buyer, &l.ListedAt, &l.ResolvedAt); err != nil {
		return nil, err
	}
	snap, err := unmarshalSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	l.ID = id.String()
	l.SellerID = seller.String()
	l.ItemID = itemID.String()
	l.Item = snap
	l.Status = domain.ListingStatus(status)
	if buyer != nil {
		b := buyer.String()
		l.BuyerID = &b
	}
	return &l, nil
}

func collectListings(rows pgx.Rows) ([]domain.Listing, error) {
	defer rows.Close()
	out := []domain.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

const historyColumns = `history_id, listing_id, item_snapshot, price, seller_id, buyer_id, sold_at`

func scanHistory(row pgx.Row) (*domain.HistoryRecord, error) {
	var (
		h                                domain.HistoryRecord
		id, listingID, sellerID, buyerID uuid.UUID
		snapshot                         []byte
	)
	if err := row.Scan(&id, &listingID, &snapshot, &h.Price, &sellerID, &buyerID, &h.SoldAt); err != nil {
		return nil, err
	}
	snap, err := unmarshalSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	h.ID = id.String()
	h.ListingID = listingID.String()
	h.Item = snap
	h.SellerID = sellerID.String()
	h.BuyerID = buyerID.String()
	return &h, nil
}

func getListing(ctx context.Context, q querier, listingID string, forUpdate bool) (*domain.Listing, error) {
	id, err := parseListingUUID(listingID)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + listingColumns + ` FROM market_listings WHERE listing_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	l, err := scanListing(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, domain.Internal(ErrMsgFailedToGetListing, err)
	}
	return l, nil
}

// GetListing returns a listing in any state
func (r *MarketRepository) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	return getListing(ctx, r.db, listingID, false)
}

// ListActive returns active listings matching the filter, newest first
func (r *MarketRepository) ListActive(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + listingColumns + `
		FROM market_listings
		WHERE status = 'active'`)

	args := []any{}
	argNum := 1

	if filter.WeaponID != 0 {
		fmt.Fprintf(&queryBuilder, " AND weapon_id = $%d", argNum)
		args = append(args, filter.WeaponID)
		argNum++
	}
	if filter.Rarity != nil {
		fmt.Fprintf(&queryBuilder, " AND rarity = $%d", argNum)
		args = append(args, filter.Rarity.String())
		argNum++
	}
	if filter.Grade != nil {
		fmt.Fprintf(&queryBuilder, " AND grade = $%d", argNum)
		args = append(args, string(*filter.Grade))
		argNum++
	}
	if filter.Conta != nil {
		fmt.Fprintf(&queryBuilder, " AND conta = $%d", argNum)
		args = append(args, *filter.Conta)
		argNum++
	}
	if filter.MinPrice != nil {
		fmt.Fprintf(&queryBuilder, " AND price >= $%d", argNum)
		args = append(args, *filter.MinPrice)
		argNum++
	}
	if filter.MaxPrice != nil {
		fmt.Fprintf(&queryBuilder, " AND price <= $%d", argNum)
		args = append(args, *filter.MaxPrice)
		argNum++
	}
	if filter.Search != "" {
		fmt.Fprintf(&queryBuilder, " AND weapon_name ILIKE $%d ESCAPE '\\'", argNum)
		args = append(args, containsPattern(filter.Search))
		argNum++
	}

	fmt.Fprintf(&queryBuilder, " ORDER BY listed_at DESC, listing_id LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToQueryListings, err)
	}
	listings, err := collectListings(rows)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToQueryListings, err)
	}
	return listings, nil
}

// LowestPrices returns the cheapest active listings of a weapon
func (r *MarketRepository) LowestPrices(ctx context.Context, weaponID, limit int) ([]domain.Listing, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+listingColumns+`
		FROM market_listings
		WHERE status = 'active' AND weapon_id = $1
		ORDER BY price ASC, listed_at ASC
		LIMIT $2`, weaponID, limit)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToQueryListings, err)
	}
	listings, err := collectListings(rows)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToQueryListings, err)
	}
	return listings, nil
}

// History returns the most recent sales of a weapon
func (r *MarketRepository) History(ctx context.Context, weaponID, limit int) ([]domain.HistoryRecord, error) {
	return history(ctx, r.db, weaponID, limit)
}

func history(ctx context.Context, q querier, weaponID, limit int) ([]domain.HistoryRecord, error) {
	rows, err := q.Query(ctx, `
		SELECT `+historyColumns+`
		FROM market_history
		WHERE weapon_id = $1
		ORDER BY sold_at DESC, history_id
		LIMIT $2`, weaponID, limit)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToQueryHistory, err)
	}
	defer rows.Close()

	out := []domain.HistoryRecord{}
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, domain.Internal(ErrMsgFailedToQueryHistory, err)
		}
		out = append(out, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(ErrMsgFailedToQueryHistory, err)
	}
	return out, nil
}

// ListingsBySeller returns every listing a player created, newest first
func (r *MarketRepository) ListingsBySeller(ctx context.Context, sellerID string) ([]domain.Listing, error) {
	id, err := parsePlayerUUID(sellerID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+listingColumns+`
		FROM market_listings
		WHERE seller_id = $1
		ORDER BY listed_at DESC, listing_id`, id)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToQueryListings, err)
	}
	listings, err := collectListings(rows)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToQueryListings, err)
	}
	return listings, nil
}

// WeaponMarketStats aggregates active prices and attaches the latest sales
func (r *MarketRepository) WeaponMarketStats(ctx context.Context, weaponID, recentSales int) (*domain.WeaponMarketStats, error) {
	var (
		count            int64
		minP, maxP, avgP decimal.NullDecimal
	)
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), MIN(price), MAX(price), ROUND(AVG(price), 4)
		FROM market_listings
		WHERE status = 'active' AND weapon_id = $1`, weaponID).Scan(&count, &minP, &maxP, &avgP)
	if err != nil {
		return nil, domain.Internal(ErrMsgFailedToQueryMarketStats, err)
	}

	recent, err := history(ctx, r.db, weaponID, recentSales)
	if err != nil {
		return nil, err
	}

	stats := &domain.WeaponMarketStats{
		WeaponID:    weaponID,
		ActiveCount: count,
		RecentSales: recent,
	}
	if minP.Valid {
		stats.MinPrice = &minP.Decimal
	}
	if maxP.Valid {
		stats.MaxPrice = &maxP.Decimal
	}
	if avgP.Valid {
		stats.AvgPrice = &avgP.Decimal
	}
	return stats, nil
}

// GetListing locks the listing row until the transaction ends
func (t *marketTx) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	return getListing(ctx, t.tx, listingID, true)
}

// InsertListing fails with domain.ErrItemListed if the item already has an active listing
func (t *marketTx) InsertListing(ctx context.Context, listing *domain.Listing) error {
	id, err := parseListingUUID(listing.ID)
	if err != nil {
		return err
	}
	seller, err := parsePlayerUUID(listing.SellerID)
	if err != nil {
		return err
	}
	itemID, err := parseItemUUID(listing.ItemID)
	if err != nil {
		return err
	}
	snapshot, err := json.Marshal(listing.Item)
	if err != nil {
		return domain.Internal(ErrMsgFailedToMarshalSnapshot, err)
	}

	_, err = t.tx.Exec(ctx, `
		INSERT INTO market_listings (
			listing_id, seller_id, item_id, weapon_id, weapon_name, rarity, grade, conta,
			item_snapshot, price, status, listed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		id, seller, itemID, listing.Item.WeaponID, listing.Item.WeaponName, listing.Item.Rarity.String(),
		gradeToText(listing.Item.Grade), listing.Item.Conta, snapshot, listing.Price,
		string(listing.Status), listing.ListedAt)
	if err != nil {
		if isUniqueViolation(err, ConstraintActiveItemListing) {
			return fmt.Errorf("%w: %s", domain.ErrItemListed, listing.ItemID)
		}
		return domain.Internal(ErrMsgFailedToInsertListing, err)
	}
	return nil
}

// MarkListingSold only succeeds while the listing is active
func (t *marketTx) MarkListingSold(ctx context.Context, listingID, buyerID string, at time.Time) error {
	id, err := parseListingUUID(listingID)
	if err != nil {
		return err
	}
	buyer, err := parsePlayerUUID(buyerID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE market_listings
		SET status = 'sold', buyer_id = $2, resolved_at = $3
		WHERE listing_id = $1 AND status = 'active'`, id, buyer, at)
	if err != nil {
		return domain.Internal(ErrMsgFailedToUpdateListing, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotActive
	}
	return nil
}

// MarkListingCancelled only succeeds while the listing is active
func (t *marketTx) MarkListingCancelled(ctx context.Context, listingID string, at time.Time) error {
	id, err := parseListingUUID(listingID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE market_listings
		SET status = 'cancelled', resolved_at = $2
		WHERE listing_id = $1 AND status = 'active'`, id, at)
	if err != nil {
		return domain.Internal(ErrMsgFailedToUpdateListing, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotActive
	}
	return nil
}

// TransferItem only succeeds while fromID owns the item
func (t *marketTx) TransferItem(ctx context.Context, itemID, fromID, toID string, at time.Time) error {
	id, err := parseItemUUID(itemID)
	if err != nil {
		return err
	}
	from, err := parsePlayerUUID(fromID)
	if err != nil {
		return err
	}
	to, err := parsePlayerUUID(toID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE inventory_items
		SET owner_id = $3, acquired_at = $4
		WHERE item_id = $1 AND owner_id = $2`, id, from, to, at)
	if err != nil {
		return domain.Internal(ErrMsgFailedToTransferItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotOwned
	}
	return nil
}

// InsertHistory appends a completed sale
func (t *marketTx) InsertHistory(ctx context.Context, record *domain.HistoryRecord) error {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.Internal(ErrMsgFailedToInsertHistory, err)
	}
	listingID, err := parseListingUUID(record.ListingID)
	if err != nil {
		return err
	}
	seller, err := parsePlayerUUID(record.SellerID)
	if err != nil {
		return err
	}
	buyer, err := parsePlayerUUID(record.BuyerID)
	if err != nil {
		return err
	}
	snapshot, err := json.Marshal(record.Item)
	if err != nil {
		return domain.Internal(ErrMsgFailedToMarshalSnapshot, err)
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO market_history (history_id, listing_id, weapon_id, item_snapshot, price, seller_id, buyer_id, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, listingID, record.Item.WeaponID, snapshot, record.Price, seller, buyer, record.SoldAt)
	if err != nil {
		return domain.Internal(ErrMsgFailedToInsertHistory, err)
	}
	return nil
}

var (
	_ repository.Market   = (*MarketRepository)(nil)
	_ repository.MarketTx = (*marketTx)(nil)
)
