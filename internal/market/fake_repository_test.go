package market

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// fakeStore is a stateful in-memory implementation of repository.Market.
// Each call is atomic under one mutex; conditional updates behave like the
// SQL ones so concurrent buyers race on MarkListingSold.
type fakeStore struct {
	mu       sync.Mutex
	players  map[string]*domain.Player
	items    map[string]*domain.InventoryItem
	listings map[string]*domain.Listing
	history  []domain.HistoryRecord
	weapons  map[string]map[int]bool
	icons    map[string]map[string]bool

	commits   int
	rollbacks int
	failOn    string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		players:  make(map[string]*domain.Player),
		items:    make(map[string]*domain.InventoryItem),
		listings: make(map[string]*domain.Listing),
		weapons:  make(map[string]map[int]bool),
		icons:    make(map[string]map[string]bool),
	}
}

func (f *fakeStore) addPlayer(id string, balance int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.players[id] = &domain.Player{ID: id, Username: id, Balance: decimal.NewFromInt(balance)}
}

func (f *fakeStore) addItem(item domain.InventoryItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = &item
}

func (f *fakeStore) balance(id string) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.players[id].Balance
}

func (f *fakeStore) owner(itemID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[itemID].OwnerID
}

func (f *fakeStore) fail(op string) error {
	if f.failOn == op {
		return domain.Internal(op, fmt.Errorf("injected failure"))
	}
	return nil
}

func (f *fakeStore) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	if err := f.fail("BeginTx"); err != nil {
		return nil, err
	}
	return &fakeTx{store: f}, nil
}

func (f *fakeStore) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.listings[listingID]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeStore) ListActive(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Listing
	for _, l := range f.listings {
		if l.Status != domain.ListingActive {
			continue
		}
		if filter.WeaponID != 0 && l.Item.WeaponID != filter.WeaponID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(l.Item.WeaponName), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ListedAt.After(out[j].ListedAt) })
	if len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeStore) LowestPrices(ctx context.Context, weaponID, limit int) ([]domain.Listing, error) {
	all, _ := f.ListActive(ctx, domain.ListingFilter{WeaponID: weaponID, Limit: MaxListingLimit})
	sort.Slice(all, func(i, j int) bool { return all[i].Price.LessThan(all[j].Price) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeStore) History(ctx context.Context, weaponID, limit int) ([]domain.HistoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.HistoryRecord
	for i := len(f.history) - 1; i >= 0 && len(out) < limit; i-- {
		if f.history[i].Item.WeaponID == weaponID {
			out = append(out, f.history[i])
		}
	}
	return out, nil
}

func (f *fakeStore) ListingsBySeller(ctx context.Context, sellerID string) ([]domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Listing
	for _, l := range f.listings {
		if l.SellerID == sellerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeStore) WeaponMarketStats(ctx context.Context, weaponID, recentSales int) (*domain.WeaponMarketStats, error) {
	active, _ := f.LowestPrices(ctx, weaponID, MaxListingLimit)
	recent, _ := f.History(ctx, weaponID, recentSales)
	stats := &domain.WeaponMarketStats{WeaponID: weaponID, ActiveCount: int64(len(active)), RecentSales: recent}
	if len(active) > 0 {
		minP, maxP := active[0].Price, active[len(active)-1].Price
		stats.MinPrice, stats.MaxPrice = &minP, &maxP
	}
	return stats, nil
}

// fakeTx applies writes straight to the store
type fakeTx struct {
	store *fakeStore
	done  bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if err := t.store.fail("Commit"); err != nil {
		return err
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.commits++
	t.done = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.done {
		return fmt.Errorf("tx is closed")
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.rollbacks++
	t.done = true
	return nil
}

func (t *fakeTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	p, ok := t.store.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (t *fakeTx) LockPlayers(ctx context.Context, playerIDs ...string) (map[string]*domain.Player, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	out := make(map[string]*domain.Player, len(playerIDs))
	for _, id := range playerIDs {
		if p, ok := t.store.players[id]; ok {
			cp := *p
			out[id] = &cp
		}
	}
	return out, nil
}

func (t *fakeTx) AdjustBalance(ctx context.Context, playerID string, delta decimal.Decimal) (decimal.Decimal, error) {
	if err := t.store.fail("AdjustBalance"); err != nil {
		return decimal.Zero, err
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	p := t.store.players[playerID]
	p.Balance = p.Balance.Add(delta)
	return p.Balance, nil
}

func (t *fakeTx) UnlockWeapon(ctx context.Context, playerID string, weaponID int) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.store.weapons[playerID] == nil {
		t.store.weapons[playerID] = make(map[int]bool)
	}
	t.store.weapons[playerID][weaponID] = true
	return nil
}

func (t *fakeTx) UnlockIcon(ctx context.Context, playerID, icon string) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.store.icons[playerID] == nil {
		t.store.icons[playerID] = make(map[string]bool)
	}
	t.store.icons[playerID][icon] = true
	return nil
}

func (t *fakeTx) GetItemForUpdate(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	item, ok := t.store.items[itemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (t *fakeTx) IsItemListed(ctx context.Context, itemID string) (bool, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return t.store.activeListingFor(itemID), nil
}

func (f *fakeStore) activeListingFor(itemID string) bool {
	for _, l := range f.listings {
		if l.ItemID == itemID && l.Status == domain.ListingActive {
			return true
		}
	}
	return false
}

func (t *fakeTx) InsertListing(ctx context.Context, listing *domain.Listing) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.store.activeListingFor(listing.ItemID) {
		return domain.ErrItemListed
	}
	cp := *listing
	t.store.listings[listing.ID] = &cp
	return nil
}

func (t *fakeTx) GetListing(ctx context.Context, listingID string) (*domain.Listing, error) {
	return t.store.GetListing(ctx, listingID)
}

func (t *fakeTx) MarkListingSold(ctx context.Context, listingID, buyerID string, at time.Time) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	l, ok := t.store.listings[listingID]
	if !ok || l.Status != domain.ListingActive {
		return domain.ErrListingNotActive
	}
	l.Status = domain.ListingSold
	l.BuyerID = &buyerID
	l.ResolvedAt = &at
	return nil
}

func (t *fakeTx) MarkListingCancelled(ctx context.Context, listingID string, at time.Time) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	l, ok := t.store.listings[listingID]
	if !ok || l.Status != domain.ListingActive {
		return domain.ErrListingNotActive
	}
	l.Status = domain.ListingCancelled
	l.ResolvedAt = &at
	return nil
}

func (t *fakeTx) TransferItem(ctx context.Context, itemID, fromID, toID string, at time.Time) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	item, ok := t.store.items[itemID]
	if !ok || item.OwnerID != fromID {
		return domain.ErrItemNotOwned
	}
	item.OwnerID = toID
	item.AcquiredAt = at
	return nil
}

func (t *fakeTx) InsertHistory(ctx context.Context, record *domain.HistoryRecord) error {
	if err := t.store.fail("InsertHistory"); err != nil {
		return err
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.history = append(t.store.history, *record)
	return nil
}

var (
	_ repository.Market   = (*fakeStore)(nil)
	_ repository.MarketTx = (*fakeTx)(nil)
)
