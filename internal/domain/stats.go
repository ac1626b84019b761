package domain

import (
	"math"
	"time"
)

// PassiveAggregate is a player's derived-stats snapshot. It is a pure function
// of the player's inventory and unlocks and is never edited directly.
type PassiveAggregate struct {
	Luck                  float64 `json:"luck"`
	GradeBonus            float64 `json:"grade_bonus"`
	MoneyPerSecond        float64 `json:"money_per_second"`
	MoneyPerSecondPercent float64 `json:"money_per_second_percent"`
	BoxDiscountPercent    float64 `json:"box_discount_percent"`
	SellBonusPercent      float64 `json:"sell_bonus_percent"`
	ExpBonusPercent       float64 `json:"exp_bonus_percent"`
}

// Map returns the aggregate keyed by stat name
func (a PassiveAggregate) Map() map[StatKey]float64 {
	return map[StatKey]float64{
		StatLuck:                  a.Luck,
		StatGradeBonus:            a.GradeBonus,
		StatMoneyPerSecond:        a.MoneyPerSecond,
		StatMoneyPerSecondPercent: a.MoneyPerSecondPercent,
		StatBoxDiscountPercent:    a.BoxDiscountPercent,
		StatSellBonusPercent:      a.SellBonusPercent,
		StatExpBonusPercent:       a.ExpBonusPercent,
	}
}

// LuckLevel is the integer luck fed into box draws
func (a PassiveAggregate) LuckLevel() int {
	return int(math.Floor(math.Max(a.Luck, 0)))
}

// GradeBonusLevel is the integer grade bonus fed into grade draws
func (a PassiveAggregate) GradeBonusLevel() int {
	return int(math.Floor(math.Max(a.GradeBonus, 0)))
}

// WeaponStats counts how a weapon has dropped across all players
type WeaponStats struct {
	WeaponID        int        `json:"weapon_id"`
	TotalOpenings   int64      `json:"total_openings"`
	CurrentExisting int64      `json:"current_existing"`
	ContaOpenings   int64      `json:"conta_openings"`
	LastOpenedAt    *time.Time `json:"last_opened_at,omitempty"`
}
