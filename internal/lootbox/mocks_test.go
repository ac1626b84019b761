package lootbox

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// MockRepository implements repository.Lootbox for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.LootboxTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LootboxTx), args.Error(1)
}

// MockTx implements repository.LootboxTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
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
	args := m.Called(ctx, playerID, weaponID)
	return args.Error(0)
}

func (m *MockTx) InsertItem(ctx context.Context, item *domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTx) RecordOpening(ctx context.Context, weaponID int, conta bool) error {
	args := m.Called(ctx, weaponID, conta)
	return args.Error(0)
}

func (m *MockTx) AddExperience(ctx context.Context, playerID string, exp int64) error {
	args := m.Called(ctx, playerID, exp)
	return args.Error(0)
}

var _ repository.LootboxTx = (*MockTx)(nil)

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
