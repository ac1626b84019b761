package economy

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// MockRepository implements repository.Economy for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.EconomyTx), args.Error(1)
}

// MockTx implements repository.EconomyTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTx) LockPlayers(ctx context.Context, playerIDs ...string) (map[string]*domain.Player, error) {
	args := m.Called(ctx, playerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.Player), args.Error(1)
}

func (m *MockTx) AdjustBalance(ctx context.Context, playerID string, delta decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, playerID, delta)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTx) UnlockWeapon(ctx context.Context, playerID string, weaponID int) error {
	return m.Called(ctx, playerID, weaponID).Error(0)
}

func (m *MockTx) GetItemForUpdate(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockTx) IsItemListed(ctx context.Context, itemID string) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) DeleteItem(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *MockTx) RecordRemoval(ctx context.Context, weaponID int) error {
	return m.Called(ctx, weaponID).Error(0)
}

func (m *MockTx) UnlockBorder(ctx context.Context, playerID, borderID string) (bool, error) {
	args := m.Called(ctx, playerID, borderID)
	return args.Bool(0), args.Error(1)
}

var _ repository.EconomyTx = (*MockTx)(nil)

// recordingPublisher captures published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) types() []event.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
