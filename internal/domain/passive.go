package domain

// StatKey names a derived economic stat of a player
type StatKey string

// Derived stats. Percent stats use plain numbers: 7 means 7%.
const (
	StatLuck                  StatKey = "luck"
	StatGradeBonus            StatKey = "grade_bonus"
	StatMoneyPerSecond        StatKey = "money_per_second"
	StatMoneyPerSecondPercent StatKey = "money_per_second_percent"
	StatBoxDiscountPercent    StatKey = "box_discount_percent"
	StatSellBonusPercent      StatKey = "sell_bonus_percent"
	StatExpBonusPercent       StatKey = "exp_bonus_percent"
)

// PassiveKind tags the shape of a passive effect
type PassiveKind string

// Passive kinds
const (
	PassiveMoneyPerSecond        PassiveKind = "money_per_second"
	PassiveMoneyPerSecondPercent PassiveKind = "money_per_second_percent"
	PassiveSellBonus             PassiveKind = "sell_bonus"
	PassiveBoxDiscount           PassiveKind = "box_discount"
	PassiveExpBonus              PassiveKind = "exp_bonus"
	PassiveBoxExpBonus           PassiveKind = "box_exp_bonus"
	PassiveLuck                  PassiveKind = "luck"
	PassiveGradeBonus            PassiveKind = "grade_bonus"
	PassiveLuckAndGrade          PassiveKind = "luck_and_grade"
	PassiveLuckAndMoney          PassiveKind = "luck_and_money"
	PassiveCompoundMoney         PassiveKind = "compound_money"
	PassiveMoneyAndExp           PassiveKind = "money_and_exp"
	PassiveTriple                PassiveKind = "triple"
	PassiveBorderUnlock          PassiveKind = "border_unlock"
)

// Contribution is one constituent of an effect, already converted to the
// units of its derived stat.
type Contribution struct {
	Stat  StatKey
	Value float64
}

// Effect is the closed set of passive shapes. Every variant lives in this
// file; the unexported marker keeps other packages from adding new ones.
type Effect interface {
	Kind() PassiveKind
	// Scaled returns a copy with every numeric field multiplied by m.
	Scaled(m float64) Effect
	// Contributions decomposes the effect into derived-stat constituents.
	Contributions() []Contribution
	effect()
}

// Passive is a weapon's perk: an effect plus its stacking rule
type Passive struct {
	Effect    Effect
	Stackable bool
}

// Kind returns the effect kind, or "" for a nil passive
func (p *Passive) Kind() PassiveKind {
	if p == nil || p.Effect == nil {
		return ""
	}
	return p.Effect.Kind()
}

// Scaled returns a copy of the passive with its effect scaled by m
func (p *Passive) Scaled(m float64) *Passive {
	if p == nil || p.Effect == nil {
		return nil
	}
	return &Passive{Effect: p.Effect.Scaled(m), Stackable: p.Stackable}
}

// fractionToPercent converts 0.07 style fractions to 7 style percents
const fractionToPercent = 100

// MoneyPerSecond adds flat money per second
type MoneyPerSecond struct {
	Value float64 `json:"value"`
}

func (MoneyPerSecond) Kind() PassiveKind { return PassiveMoneyPerSecond }
func (e MoneyPerSecond) Scaled(m float64) Effect {
	return MoneyPerSecond{Value: e.Value * m}
}
func (e MoneyPerSecond) Contributions() []Contribution {
	return []Contribution{{Stat: StatMoneyPerSecond, Value: e.Value}}
}
func (MoneyPerSecond) effect() {}

// MoneyPerSecondPercent boosts money per second by a percent
type MoneyPerSecondPercent struct {
	Percent float64 `json:"percent"`
}

func (MoneyPerSecondPercent) Kind() PassiveKind { return PassiveMoneyPerSecondPercent }
func (e MoneyPerSecondPercent) Scaled(m float64) Effect {
	return MoneyPerSecondPercent{Percent: e.Percent * m}
}
func (e MoneyPerSecondPercent) Contributions() []Contribution {
	return []Contribution{{Stat: StatMoneyPerSecondPercent, Value: e.Percent}}
}
func (MoneyPerSecondPercent) effect() {}

// SellBonus raises the system sell price of weapons
type SellBonus struct {
	Fraction float64 `json:"fraction"`
}

func (SellBonus) Kind() PassiveKind { return PassiveSellBonus }
func (e SellBonus) Scaled(m float64) Effect {
	return SellBonus{Fraction: e.Fraction * m}
}
func (e SellBonus) Contributions() []Contribution {
	return []Contribution{{Stat: StatSellBonusPercent, Value: e.Fraction * fractionToPercent}}
}
func (SellBonus) effect() {}

// BoxDiscount lowers box prices
type BoxDiscount struct {
	Fraction float64 `json:"fraction"`
}

func (BoxDiscount) Kind() PassiveKind { return PassiveBoxDiscount }
func (e BoxDiscount) Scaled(m float64) Effect {
	return BoxDiscount{Fraction: e.Fraction * m}
}
func (e BoxDiscount) Contributions() []Contribution {
	return []Contribution{{Stat: StatBoxDiscountPercent, Value: e.Fraction * fractionToPercent}}
}
func (BoxDiscount) effect() {}

// ExpBonus raises experience from boxes, expressed as a fraction
type ExpBonus struct {
	Fraction float64 `json:"fraction"`
}

func (ExpBonus) Kind() PassiveKind { return PassiveExpBonus }
func (e ExpBonus) Scaled(m float64) Effect {
	return ExpBonus{Fraction: e.Fraction * m}
}
func (e ExpBonus) Contributions() []Contribution {
	return []Contribution{{Stat: StatExpBonusPercent, Value: e.Fraction * fractionToPercent}}
}
func (ExpBonus) effect() {}

// BoxExpBonus raises experience from boxes, expressed as a percent
type BoxExpBonus struct {
	Percent float64 `json:"percent"`
}

func (BoxExpBonus) Kind() PassiveKind { return PassiveBoxExpBonus }
func (e BoxExpBonus) Scaled(m float64) Effect {
	return BoxExpBonus{Percent: e.Percent * m}
}
func (e BoxExpBonus) Contributions() []Contribution {
	return []Contribution{{Stat: StatExpBonusPercent, Value: e.Percent}}
}
func (BoxExpBonus) effect() {}

// Luck biases box draws toward epic and rarer weapons
type Luck struct {
	Value float64 `json:"value"`
}

func (Luck) Kind() PassiveKind { return PassiveLuck }
func (e Luck) Scaled(m float64) Effect {
	return Luck{Value: e.Value * m}
}
func (e Luck) Contributions() []Contribution {
	return []Contribution{{Stat: StatLuck, Value: e.Value}}
}
func (Luck) effect() {}

// GradeBonus raises the chance of the top grade
type GradeBonus struct {
	Value float64 `json:"value"`
}

func (GradeBonus) Kind() PassiveKind { return PassiveGradeBonus }
func (e GradeBonus) Scaled(m float64) Effect {
	return GradeBonus{Value: e.Value * m}
}
func (e GradeBonus) Contributions() []Contribution {
	return []Contribution{{Stat: StatGradeBonus, Value: e.Value}}
}
func (GradeBonus) effect() {}

// LuckAndGrade combines luck with grade bonus
type LuckAndGrade struct {
	Luck       float64 `json:"luck"`
	GradeBonus float64 `json:"grade_bonus"`
}

func (LuckAndGrade) Kind() PassiveKind { return PassiveLuckAndGrade }
func (e LuckAndGrade) Scaled(m float64) Effect {
	return LuckAndGrade{Luck: e.Luck * m, GradeBonus: e.GradeBonus * m}
}
func (e LuckAndGrade) Contributions() []Contribution {
	return []Contribution{
		{Stat: StatLuck, Value: e.Luck},
		{Stat: StatGradeBonus, Value: e.GradeBonus},
	}
}
func (LuckAndGrade) effect() {}

// LuckAndMoney combines luck with flat money per second
type LuckAndMoney struct {
	Luck           float64 `json:"luck"`
	MoneyPerSecond float64 `json:"money_per_second"`
}

func (LuckAndMoney) Kind() PassiveKind { return PassiveLuckAndMoney }
func (e LuckAndMoney) Scaled(m float64) Effect {
	return LuckAndMoney{Luck: e.Luck * m, MoneyPerSecond: e.MoneyPerSecond * m}
}
func (e LuckAndMoney) Contributions() []Contribution {
	return []Contribution{
		{Stat: StatLuck, Value: e.Luck},
		{Stat: StatMoneyPerSecond, Value: e.MoneyPerSecond},
	}
}
func (LuckAndMoney) effect() {}

// CompoundMoney adds flat money per second and a money-per-second boost
type CompoundMoney struct {
	MoneyPerSecond float64 `json:"money_per_second"`
	ExtraFraction  float64 `json:"extra_fraction"`
}

func (CompoundMoney) Kind() PassiveKind { return PassiveCompoundMoney }
func (e CompoundMoney) Scaled(m float64) Effect {
	return CompoundMoney{MoneyPerSecond: e.MoneyPerSecond * m, ExtraFraction: e.ExtraFraction * m}
}
func (e CompoundMoney) Contributions() []Contribution {
	return []Contribution{
		{Stat: StatMoneyPerSecond, Value: e.MoneyPerSecond},
		{Stat: StatMoneyPerSecondPercent, Value: e.ExtraFraction * fractionToPercent},
	}
}
func (CompoundMoney) effect() {}

// MoneyAndExp adds flat money per second and an experience percent
type MoneyAndExp struct {
	MoneyPerSecond float64 `json:"money_per_second"`
	ExpPercent     float64 `json:"exp_percent"`
}

func (MoneyAndExp) Kind() PassiveKind { return PassiveMoneyAndExp }
func (e MoneyAndExp) Scaled(m float64) Effect {
	return MoneyAndExp{MoneyPerSecond: e.MoneyPerSecond * m, ExpPercent: e.ExpPercent * m}
}
func (e MoneyAndExp) Contributions() []Contribution {
	return []Contribution{
		{Stat: StatMoneyPerSecond, Value: e.MoneyPerSecond},
		{Stat: StatExpBonusPercent, Value: e.ExpPercent},
	}
}
func (MoneyAndExp) effect() {}

// Triple combines luck, grade bonus and an experience percent
type Triple struct {
	Luck       float64 `json:"luck"`
	GradeBonus float64 `json:"grade_bonus"`
	ExpPercent float64 `json:"exp_percent"`
}

func (Triple) Kind() PassiveKind { return PassiveTriple }
func (e Triple) Scaled(m float64) Effect {
	return Triple{Luck: e.Luck * m, GradeBonus: e.GradeBonus * m, ExpPercent: e.ExpPercent * m}
}
func (e Triple) Contributions() []Contribution {
	return []Contribution{
		{Stat: StatLuck, Value: e.Luck},
		{Stat: StatGradeBonus, Value: e.GradeBonus},
		{Stat: StatExpBonusPercent, Value: e.ExpPercent},
	}
}
func (Triple) effect() {}

// BorderUnlock describes the permanent bonus granted once a border item is
// used. Holding the item contributes nothing.
type BorderUnlock struct {
	Luck        float64 `json:"luck"`
	ExpFraction float64 `json:"exp_fraction"`
}

func (BorderUnlock) Kind() PassiveKind { return PassiveBorderUnlock }
func (e BorderUnlock) Scaled(m float64) Effect {
	return BorderUnlock{Luck: e.Luck * m, ExpFraction: e.ExpFraction * m}
}
func (BorderUnlock) Contributions() []Contribution { return nil }

// UnlockContributions returns the flat bonus applied while the border is unlocked
func (e BorderUnlock) UnlockContributions() []Contribution {
	return []Contribution{
		{Stat: StatLuck, Value: e.Luck},
		{Stat: StatExpBonusPercent, Value: e.ExpFraction * fractionToPercent},
	}
}
func (BorderUnlock) effect() {}
