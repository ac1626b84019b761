package domain

import "fmt"

// Grade is the quality letter drawn for every gradable item
type Grade string

// Grades from most to least common
const (
	GradeE Grade = "E"
	GradeF Grade = "F"
	GradeD Grade = "D"
	GradeC Grade = "C"
	GradeB Grade = "B"
	GradeA Grade = "A"
	GradeS Grade = "S"
	GradeM Grade = "M"
)

// QualityGrade carries a grade's base probability (percent) and multipliers
type QualityGrade struct {
	Letter            Grade   `json:"letter"`
	Probability       float64 `json:"probability"`
	PriceMultiplier   float64 `json:"price_multiplier"`
	PassiveMultiplier float64 `json:"passive_multiplier"`
}

// GradeTable is the base grade table in draw order. The probabilities sum to 100.
var GradeTable = []QualityGrade{
	{Letter: GradeE, Probability: 35, PriceMultiplier: 1.0, PassiveMultiplier: 1.0},
	{Letter: GradeF, Probability: 25, PriceMultiplier: 1.2, PassiveMultiplier: 1.2},
	{Letter: GradeD, Probability: 18, PriceMultiplier: 1.45, PassiveMultiplier: 1.4},
	{Letter: GradeC, Probability: 12, PriceMultiplier: 1.7, PassiveMultiplier: 1.6},
	{Letter: GradeB, Probability: 6, PriceMultiplier: 2.0, PassiveMultiplier: 2.0},
	{Letter: GradeA, Probability: 2.5, PriceMultiplier: 2.5, PassiveMultiplier: 2.4},
	{Letter: GradeS, Probability: 1.0, PriceMultiplier: 3.5, PassiveMultiplier: 3.0},
	{Letter: GradeM, Probability: 0.5, PriceMultiplier: 6.0, PassiveMultiplier: 5.0},
}

// Conta is the rare variant rolled independently of the grade
const (
	ContaProbability       = 0.10
	ContaPriceMultiplier   = 1.80
	ContaPassiveMultiplier = 1.3
)

// LookupGrade returns the table entry for a letter
func LookupGrade(g Grade) (QualityGrade, bool) {
	for _, qg := range GradeTable {
		if qg.Letter == g {
			return qg, true
		}
	}
	return QualityGrade{}, false
}

// ParseGrade validates a grade letter
func ParseGrade(s string) (Grade, error) {
	if _, ok := LookupGrade(Grade(s)); !ok {
		return "", fmt.Errorf("%w: unknown grade %q", ErrValidation, s)
	}
	return Grade(s), nil
}
