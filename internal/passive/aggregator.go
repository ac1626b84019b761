package passive

import (
	"sort"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// statFold accumulates one derived stat. Stackable contributions sum and
// non-stackable ones keep only the best, whatever passive kind they came from.
type statFold struct {
	stacked float64
	best    float64
}

func (f statFold) total() float64 {
	return f.stacked + f.best
}

// Aggregator folds inventories into derived stats
type Aggregator struct {
	catalog *catalog.Catalog
}

// NewAggregator creates an aggregator resolving border bonuses from c
func NewAggregator(c *catalog.Catalog) *Aggregator {
	return &Aggregator{catalog: c}
}

// Aggregate computes the derived stats of a player from their items and
// permanent unlocks. It reads nothing else. Per stat the result is the sum
// of stackable contributions plus the best non-stackable one, so item
// order does not matter.
func (a *Aggregator) Aggregate(items []domain.InventoryItem, unlocks *domain.Unlocks) domain.PassiveAggregate {
	folds := make(map[domain.StatKey]*statFold)
	for _, item := range items {
		p := item.Passive
		if p == nil || p.Effect == nil {
			continue
		}
		for _, c := range p.Effect.Contributions() {
			f, ok := folds[c.Stat]
			if !ok {
				f = &statFold{}
				folds[c.Stat] = f
			}
			if p.Stackable {
				f.stacked += c.Value
			} else if c.Value > f.best {
				f.best = c.Value
			}
		}
	}

	totals := make(map[domain.StatKey]float64, len(folds))
	for stat, f := range folds {
		totals[stat] = f.total()
	}
	for _, c := range a.unlockBonuses(unlocks) {
		totals[c.Stat] += c.Value
	}

	return domain.PassiveAggregate{
		Luck:                  totals[domain.StatLuck],
		GradeBonus:            totals[domain.StatGradeBonus],
		MoneyPerSecond:        totals[domain.StatMoneyPerSecond] * (1 + totals[domain.StatMoneyPerSecondPercent]/100),
		MoneyPerSecondPercent: totals[domain.StatMoneyPerSecondPercent],
		BoxDiscountPercent:    totals[domain.StatBoxDiscountPercent],
		SellBonusPercent:      totals[domain.StatSellBonusPercent],
		ExpBonusPercent:       totals[domain.StatExpBonusPercent],
	}
}

// unlockBonuses returns the flat bonuses of every unlocked border, each
// border counted once
func (a *Aggregator) unlockBonuses(unlocks *domain.Unlocks) []domain.Contribution {
	if unlocks == nil || len(unlocks.Borders) == 0 {
		return nil
	}

	borders := append([]string(nil), unlocks.Borders...)
	sort.Strings(borders)

	var out []domain.Contribution
	for i, border := range borders {
		if i > 0 && borders[i-1] == border {
			continue
		}
		w, ok := a.catalog.BorderWeapon(border)
		if !ok || w.Passive == nil {
			logger.Debug(LogMsgUnknownBorder, LogFieldBorder, border)
			continue
		}
		if bu, ok := w.Passive.Effect.(domain.BorderUnlock); ok {
			out = append(out, bu.UnlockContributions()...)
		}
	}
	return out
}
