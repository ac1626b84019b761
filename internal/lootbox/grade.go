package lootbox

import "github.com/osse101/LootForge_Go/internal/domain"

// MIncrease is the percentage points added to the M grade for a grade bonus
func MIncrease(bonus int) float64 {
	b := float64(bonus)
	switch {
	case bonus <= 0:
		return 0
	case bonus <= 10:
		return b * 0.01
	case bonus <= 100:
		return 0.1 + (b-10)*0.0025
	case bonus <= 1000:
		return 0.35 + (b-100)*0.00015
	default:
		return GradeBonusCap
	}
}

// AdjustedGrades returns the grade table with the M boost applied. The table
// is rescaled to 100 only when the boost pushes it above 100; a total below
// 100 is left as is.
func AdjustedGrades(bonus int) []domain.QualityGrade {
	grades := make([]domain.QualityGrade, len(domain.GradeTable))
	copy(grades, domain.GradeTable)

	inc := MIncrease(bonus)
	if inc == 0 {
		return grades
	}

	total := 0.0
	for i := range grades {
		if grades[i].Letter == domain.GradeM {
			grades[i].Probability += inc
		}
		total += grades[i].Probability
	}

	if total > 100 {
		scale := 100 / total
		for i := range grades {
			grades[i].Probability *= scale
		}
	}
	return grades
}

// PickGrade walks the table in order and returns the first grade whose
// cumulative percentage exceeds draw (in [0,100)). It falls back to E.
func PickGrade(grades []domain.QualityGrade, draw float64) domain.QualityGrade {
	cumulative := 0.0
	for _, g := range grades {
		cumulative += g.Probability
		if draw < cumulative {
			return g
		}
	}
	fallback, _ := domain.LookupGrade(domain.GradeE)
	return fallback
}
