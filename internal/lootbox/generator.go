package lootbox

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/utils"
)

type distributionKey struct {
	boxID int
	luck  int
}

// Generator draws loot from the catalog. It is safe for concurrent use as
// long as the random source is.
type Generator struct {
	catalog *catalog.Catalog
	rnd     func() float64
	cache   *lru.Cache[distributionKey, *Distribution]
}

// NewGenerator creates a generator. A nil rnd uses utils.RandomFloat.
func NewGenerator(c *catalog.Catalog, rnd func() float64, cacheSize int) (*Generator, error) {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	if cacheSize <= 0 {
		cacheSize = DefaultDistributionCacheSize
	}
	cache, err := lru.New[distributionKey, *Distribution](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create distribution cache: %w", err)
	}
	return &Generator{catalog: c, rnd: rnd, cache: cache}, nil
}

// Distribution returns the luck-adjusted draw table of a box. Tables are
// immutable once built and cached per (box, luck).
func (g *Generator) Distribution(boxID, luck int) (*Distribution, error) {
	if luck < 0 {
		luck = 0
	}
	key := distributionKey{boxID: boxID, luck: luck}
	if d, ok := g.cache.Get(key); ok {
		return d, nil
	}

	box, err := g.catalog.Box(boxID)
	if err != nil {
		return nil, err
	}

	entries := Normalize(box.Weights)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: box %d has no drops", domain.ErrInternal, boxID)
	}
	entries = ApplyLuck(entries, g.rarityOf, luck)

	d := &Distribution{BoxID: boxID, Luck: luck, Entries: entries}
	g.cache.Add(key, d)
	return d, nil
}

func (g *Generator) rarityOf(weaponID int) domain.Rarity {
	w, err := g.catalog.Weapon(weaponID)
	if err != nil {
		return 0
	}
	return w.Rarity
}

// Generate draws one weapon from a box and resolves its grade, conta flag,
// price and passive. It has no side effects beyond consuming randomness.
func (g *Generator) Generate(boxID, luck, gradeBonus int) (*domain.LootResult, error) {
	dist, err := g.Distribution(boxID, luck)
	if err != nil {
		return nil, err
	}

	weapon, err := g.catalog.Weapon(dist.Pick(g.rnd()))
	if err != nil {
		return nil, err
	}

	if weapon.NonGradable {
		return &domain.LootResult{
			Weapon:     weapon,
			FinalPrice: weapon.BasePrice,
			Passive:    weapon.Passive,
		}, nil
	}

	grade := PickGrade(AdjustedGrades(gradeBonus), g.rnd()*GradeDrawScale)
	conta := g.rnd() < domain.ContaProbability

	priceMult := grade.PriceMultiplier
	if conta {
		priceMult *= domain.ContaPriceMultiplier
	}

	passive := g.catalog.PassiveFor(weapon, boxID).Scaled(grade.PassiveMultiplier)
	if conta {
		passive = passive.Scaled(domain.ContaPassiveMultiplier)
	}

	letter := grade.Letter
	return &domain.LootResult{
		Weapon:     weapon,
		Grade:      &letter,
		Conta:      conta,
		FinalPrice: math.Round(weapon.BasePrice * priceMult),
		Passive:    passive,
	}, nil
}

// Preview draws n weapons from the plain (luck 0) table for a roulette
// animation. No grades are drawn.
func (g *Generator) Preview(boxID, n int) ([]*domain.Weapon, error) {
	if n < 1 || n > MaxPreviewSize {
		return nil, fmt.Errorf("%w: preview size must be between 1 and %d", domain.ErrValidation, MaxPreviewSize)
	}
	dist, err := g.Distribution(boxID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Weapon, 0, n)
	for i := 0; i < n; i++ {
		w, err := g.catalog.Weapon(dist.Pick(g.rnd()))
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
