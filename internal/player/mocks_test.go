package player

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// MockRepository implements repository.Player for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreatePlayer(ctx context.Context, player *domain.Player, unlocks domain.Unlocks) error {
	args := m.Called(ctx, player, unlocks)
	return args.Error(0)
}

func (m *MockRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) GetUnlocks(ctx context.Context, playerID string) (*domain.Unlocks, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unlocks), args.Error(1)
}

func (m *MockRepository) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockRepository) SaveStats(ctx context.Context, playerID string, stats domain.PassiveAggregate) error {
	args := m.Called(ctx, playerID, stats)
	return args.Error(0)
}

var _ repository.Player = (*MockRepository)(nil)

// MockWeaponStats implements repository.WeaponStats for testing
type MockWeaponStats struct {
	mock.Mock
}

func (m *MockWeaponStats) GetWeaponStats(ctx context.Context, weaponID int) (*domain.WeaponStats, error) {
	args := m.Called(ctx, weaponID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeaponStats), args.Error(1)
}

func (m *MockWeaponStats) ListWeaponStats(ctx context.Context) ([]domain.WeaponStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeaponStats), args.Error(1)
}

var _ repository.WeaponStats = (*MockWeaponStats)(nil)
