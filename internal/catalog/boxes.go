package catalog

import "github.com/osse101/LootForge_Go/internal/domain"

func boxDefinitions() []domain.Box {
	return []domain.Box{
		{
			ID: BoxOpenerGuns, Name: "Opener Guns", Price: 0, BaseExp: 5,
			Weights: map[int]float64{1: 5, 2: 35, 3: 12, 4: 35, 5: 35, 6: 0.1},
		},
		{
			ID: BoxSomp, Name: "Caja Somp", Price: 65, BaseExp: 20,
			Weights: map[int]float64{
				7: 42, 8: 42, 9: 42, 10: 10, 11: 10,
				12: 3, 13: 2, 14: 1.5, 15: 1.3, 16: 0.5,
			},
		},
		{
			ID: BoxThunder, Name: "Caja Thunder", Price: 350, BaseExp: 50,
			Weights: map[int]float64{
				17: 35, 18: 35, 19: 35, 20: 12, 21: 12, 22: 12,
				23: 5, 24: 5, 25: 2, 26: 2, 27: 0.6, 28: 0.6,
				29: 0.12, 30: 0.05, 31: 0.05, 32: 0.03,
			},
		},
		{
			ID: BoxSnonbli, Name: "Caja Snonbli", Price: 1050, BaseExp: 105,
			Weights: map[int]float64{
				33: 37, 34: 37, 35: 37, 36: 12, 37: 12, 38: 12,
				39: 5, 40: 5, 41: 5, 42: 1, 43: 1, 44: 0.4,
				45: 0.4, 46: 0.04, 47: 0.04, 48: 0.055,
			},
		},
	}
}

// defaultPassives is the fallback table for weapons that declare no passive
func defaultPassives() map[defaultKey]*domain.Passive {
	return map[defaultKey]*domain.Passive{
		{domain.RarityCommon, BoxOpenerGuns}: stacking(domain.MoneyPerSecond{Value: 0.01}),
		{domain.RarityCommon, BoxSomp}:       stacking(domain.MoneyPerSecond{Value: 0.07}),
		{domain.RarityCommon, BoxThunder}:    stacking(domain.MoneyPerSecond{Value: 0.08}),

		{domain.RarityUncommon, BoxOpenerGuns}: stacking(domain.SellBonus{Fraction: 0.002}),
		{domain.RarityUncommon, BoxSomp}:       stacking(domain.SellBonus{Fraction: 0.002}),
		{domain.RarityUncommon, BoxThunder}:    stacking(domain.SellBonus{Fraction: 0.002}),
		{domain.RarityUncommon, BoxSnonbli}:    stacking(domain.SellBonus{Fraction: 0.002}),

		{domain.RarityRare, BoxOpenerGuns}: unique(domain.BoxDiscount{Fraction: 0.5}),
		{domain.RarityRare, BoxSomp}:       stacking(domain.MoneyPerSecond{Value: 0.1}),
		{domain.RarityRare, BoxThunder}:    stacking(domain.MoneyPerSecond{Value: 1}),
	}
}
