package lootbox

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/repository"
)

// BoxOffer is a box as priced for a specific player
type BoxOffer struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	OriginalPrice   int64           `json:"original_price"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent float64         `json:"discount_percent"`
	BaseExp         int             `json:"base_exp"`
	WeaponCount     int             `json:"weapon_count"`
}

// OddsEntry is one weapon's drop chance for a player
type OddsEntry struct {
	WeaponID    int           `json:"weapon_id"`
	Name        string        `json:"name"`
	Rarity      domain.Rarity `json:"rarity"`
	Probability float64       `json:"probability"`
}

// Odds is a box's luck-adjusted distribution for a player
type Odds struct {
	BoxID          int         `json:"box_id"`
	Luck           int         `json:"luck"`
	LuckMultiplier float64     `json:"luck_multiplier"`
	Entries        []OddsEntry `json:"entries"`
}

// Service defines the box opening interface
type Service interface {
	OpenBox(ctx context.Context, playerID string, boxID int) (*domain.OpenBoxResult, error)
	Boxes(ctx context.Context, playerID string) ([]BoxOffer, error)
	Odds(ctx context.Context, playerID string, boxID int) (*Odds, error)
	Preview(ctx context.Context, boxID, n int) ([]*domain.Weapon, error)
}

type service struct {
	repo      repository.Lootbox
	catalog   *catalog.Catalog
	gen       *Generator
	publisher event.Publisher
	now       func() time.Time
}

// NewService creates a new lootbox service
func NewService(repo repository.Lootbox, c *catalog.Catalog, gen *Generator, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		catalog:   c,
		gen:       gen,
		publisher: publisher,
		now:       time.Now,
	}
}

// BoxPrice applies a percent discount to a box price: max(0, round(price * (1 - discount/100)))
func BoxPrice(base int64, discountPercent float64) decimal.Decimal {
	price := math.Round(float64(base) * (1 - discountPercent/100))
	if price < 0 {
		price = 0
	}
	return decimal.NewFromFloat(price)
}

// ExperienceFor returns the experience credited for a box: round(baseExp * (1 + bonus/100))
func ExperienceFor(baseExp int, expBonusPercent float64) int64 {
	return int64(math.Round(float64(baseExp) * (1 + expBonusPercent/100)))
}

// OpenBox charges the player, draws loot and stores the item in one transaction
func (s *service) OpenBox(ctx context.Context, playerID string, boxID int) (*domain.OpenBoxResult, error) {
	log := logger.FromContext(ctx)

	box, err := s.catalog.Box(boxID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, domain.Internal(ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLockPlayer, err)
	}

	price := BoxPrice(box.Price, player.Stats.BoxDiscountPercent)
	if player.Balance.LessThan(price) {
		log.Info(LogMsgInsufficientFunds, LogFieldPlayerID, playerID, LogFieldBoxID, boxID)
		return nil, fmt.Errorf("%w: balance %s, price %s", domain.ErrInsufficientFunds, player.Balance.StringFixed(domain.CurrencyScale), price.String())
	}

	loot, err := s.gen.Generate(boxID, player.Stats.LuckLevel(), player.Stats.GradeBonusLevel())
	if err != nil {
		return nil, err
	}

	balance := player.Balance
	if price.IsPositive() {
		balance, err = tx.AdjustBalance(ctx, playerID, price.Neg())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToDebit, err)
		}
	}

	item := domain.InventoryItem{
		ID:         uuid.NewString(),
		OwnerID:    playerID,
		WeaponID:   loot.Weapon.ID,
		Grade:      loot.Grade,
		Conta:      loot.Conta,
		FinalPrice: decimal.NewFromFloat(loot.FinalPrice),
		Passive:    loot.Passive,
		AcquiredAt: s.now().UTC(),
	}
	if err := tx.InsertItem(ctx, &item); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToInsertItem, err)
	}
	if err := tx.RecordOpening(ctx, loot.Weapon.ID, loot.Conta); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecordStats, err)
	}
	if err := tx.UnlockWeapon(ctx, playerID, loot.Weapon.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUnlock, err)
	}

	exp := ExperienceFor(box.BaseExp, player.Stats.ExpBonusPercent)
	if err := tx.AddExperience(ctx, playerID, exp); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToAddExp, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Internal(ErrContextFailedToCommit, err)
	}

	result := &domain.OpenBoxResult{
		Loot:             *loot,
		Item:             item,
		PricePaid:        price,
		Balance:          balance,
		ExperienceGained: exp,
	}

	log.Info(LogMsgBoxOpened,
		LogFieldPlayerID, playerID,
		LogFieldBoxID, boxID,
		LogFieldWeaponID, loot.Weapon.ID,
		LogFieldGrade, gradeLabel(loot.Grade),
		LogFieldConta, loot.Conta)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewInventoryChangedEvent(domain.ChangeReasonBoxOpened, playerID))
		s.publisher.PublishWithRetry(ctx, event.NewBoxOpenedEvent(playerID, boxID, result))
	}

	return result, nil
}

// Boxes lists every box priced for the player. An empty player id yields
// undiscounted prices.
func (s *service) Boxes(ctx context.Context, playerID string) ([]BoxOffer, error) {
	stats, err := s.playerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}

	boxes := s.catalog.Boxes()
	offers := make([]BoxOffer, 0, len(boxes))
	for _, b := range boxes {
		offers = append(offers, BoxOffer{
			ID:              b.ID,
			Name:            b.Name,
			OriginalPrice:   b.Price,
			Price:           BoxPrice(b.Price, stats.BoxDiscountPercent),
			DiscountPercent: stats.BoxDiscountPercent,
			BaseExp:         b.BaseExp,
			WeaponCount:     len(b.Weights),
		})
	}
	return offers, nil
}

// Odds returns the box distribution adjusted for the player's luck
func (s *service) Odds(ctx context.Context, playerID string, boxID int) (*Odds, error) {
	stats, err := s.playerStats(ctx, playerID)
	if err != nil {
		return nil, err
	}

	luck := stats.LuckLevel()
	dist, err := s.gen.Distribution(boxID, luck)
	if err != nil {
		return nil, err
	}

	odds := &Odds{
		BoxID:          boxID,
		Luck:           luck,
		LuckMultiplier: LuckMultiplier(luck),
		Entries:        make([]OddsEntry, 0, len(dist.Entries)),
	}
	for _, e := range dist.Entries {
		w, err := s.catalog.Weapon(e.WeaponID)
		if err != nil {
			return nil, err
		}
		odds.Entries = append(odds.Entries, OddsEntry{
			WeaponID:    w.ID,
			Name:        w.Name,
			Rarity:      w.Rarity,
			Probability: e.Probability,
		})
	}
	return odds, nil
}

// Preview draws a roulette strip for display
func (s *service) Preview(ctx context.Context, boxID, n int) ([]*domain.Weapon, error) {
	return s.gen.Preview(boxID, n)
}

func (s *service) playerStats(ctx context.Context, playerID string) (domain.PassiveAggregate, error) {
	if playerID == "" {
		return domain.PassiveAggregate{}, nil
	}
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPlayerLookupFailed, LogFieldPlayerID, playerID, LogFieldError, err)
		return domain.PassiveAggregate{}, err
	}
	return player.Stats, nil
}

func gradeLabel(g *domain.Grade) string {
	if g == nil {
		return "-"
	}
	return string(*g)
}
