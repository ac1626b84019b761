package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// Profile is a player with their unlocks and an inventory summary
type Profile struct {
	Player         *domain.Player  `json:"player"`
	Unlocks        *domain.Unlocks `json:"unlocks"`
	ItemCount      int             `json:"item_count"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}

// InventoryEntry is an owned item joined with its catalog entry
type InventoryEntry struct {
	domain.InventoryItem
	Name   string        `json:"name"`
	Rarity domain.Rarity `json:"rarity"`
	Icon   string        `json:"icon"`
}

// Service defines the player account interface
type Service interface {
	RegisterPlayer(ctx context.Context, username string) (*domain.Player, error)
	GetProfile(ctx context.Context, playerID string) (*Profile, error)
	GetInventory(ctx context.Context, playerID string) ([]InventoryEntry, error)
	WeaponStats(ctx context.Context, weaponID int) (*domain.WeaponStats, error)
	AllWeaponStats(ctx context.Context) ([]domain.WeaponStats, error)
}

// Config holds new-player defaults
type Config struct {
	StartingBalance decimal.Decimal
}

type service struct {
	repo     repository.Player
	stats    repository.WeaponStats
	catalog  *catalog.Catalog
	starting decimal.Decimal
	now      func() time.Time
}

// NewService creates a new player service
func NewService(repo repository.Player, stats repository.WeaponStats, c *catalog.Catalog, cfg Config) Service {
	return &service{
		repo:     repo,
		stats:    stats,
		catalog:  c,
		starting: cfg.StartingBalance,
		now:      time.Now,
	}
}

// RegisterPlayer creates a player with the starting balance and default icon
func (s *service) RegisterPlayer(ctx context.Context, username string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)
	log.Info(LogMsgRegisterPlayerCalled, LogFieldUsername, username)

	if n := utf8.RuneCountInString(username); n < MinUsernameLength || n > MaxUsernameLength {
		return nil, fmt.Errorf(ErrMsgUsernameLengthFmt, domain.ErrValidation, MinUsernameLength, MaxUsernameLength)
	}

	player := &domain.Player{
		ID:        uuid.NewString(),
		Username:  username,
		Balance:   s.starting,
		CreatedAt: s.now().UTC(),
	}

	var unlocks domain.Unlocks
	if w, err := s.catalog.Weapon(DefaultIconWeaponID); err == nil {
		unlocks.Icons = []string{w.Icon}
	}

	if err := s.repo.CreatePlayer(ctx, player, unlocks); err != nil {
		log.Error(LogErrFailedToCreatePlayer, LogFieldError, err, LogFieldUsername, username)
		return nil, err
	}

	log.Info(LogMsgPlayerRegistered, LogFieldPlayerID, player.ID, LogFieldUsername, username)
	return player, nil
}

// GetProfile loads a player, their unlocks and a summary of what they own
func (s *service) GetProfile(ctx context.Context, playerID string) (*Profile, error) {
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadPlayer, err)
	}
	unlocks, err := s.repo.GetUnlocks(ctx, playerID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgProfileLoadFailed, LogFieldPlayerID, playerID, LogFieldError, err)
		return nil, fmt.Errorf("%s: %w", ErrContextLoadUnlocks, err)
	}
	items, err := s.repo.GetInventory(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadInventory, err)
	}

	value := decimal.Zero
	for _, item := range items {
		value = value.Add(item.FinalPrice)
	}

	return &Profile{
		Player:         player,
		Unlocks:        unlocks,
		ItemCount:      len(items),
		InventoryValue: value,
	}, nil
}

// GetInventory lists a player's items, newest first, with catalog details
func (s *service) GetInventory(ctx context.Context, playerID string) ([]InventoryEntry, error) {
	if _, err := s.repo.GetPlayer(ctx, playerID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadPlayer, err)
	}
	items, err := s.repo.GetInventory(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadInventory, err)
	}

	entries := make([]InventoryEntry, 0, len(items))
	for _, item := range items {
		entry := InventoryEntry{InventoryItem: item}
		if w, err := s.catalog.Weapon(item.WeaponID); err == nil {
			entry.Name = w.Name
			entry.Rarity = w.Rarity
			entry.Icon = w.Icon
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WeaponStats returns drop counters for a catalog weapon. A weapon that has
// never dropped reports zeroes.
func (s *service) WeaponStats(ctx context.Context, weaponID int) (*domain.WeaponStats, error) {
	if _, err := s.catalog.Weapon(weaponID); err != nil {
		return nil, err
	}
	stats, err := s.stats.GetWeaponStats(ctx, weaponID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.WeaponStats{WeaponID: weaponID}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrContextLoadStats, err)
	}
	return stats, nil
}

// AllWeaponStats returns the counters of every weapon that has dropped
func (s *service) AllWeaponStats(ctx context.Context) ([]domain.WeaponStats, error) {
	stats, err := s.stats.ListWeaponStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextLoadStats, err)
	}
	return stats, nil
}
