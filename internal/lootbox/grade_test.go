package lootbox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/LootForge_Go/internal/domain"
)

func TestMIncrease(t *testing.T) {
	tests := []struct {
		bonus int
		want  float64
	}{
		{0, 0},
		{-3, 0},
		{5, 0.05},
		{10, 0.1},
		{11, 0.1025},
		{50, 0.2},
		{99, 0.3225},
		{100, 0.325},
		{101, 0.35015},
		{999, 0.48485},
		{1000, 0.485},
		{1001, 0.5},
		{50000, 0.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, MIncrease(tt.bonus), 1e-9, "bonus %d", tt.bonus)
	}
}

func gradeProbability(grades []domain.QualityGrade, g domain.Grade) float64 {
	for _, qg := range grades {
		if qg.Letter == g {
			return qg.Probability
		}
	}
	return -1
}

func sumGrades(grades []domain.QualityGrade) float64 {
	total := 0.0
	for _, g := range grades {
		total += g.Probability
	}
	return total
}

func TestAdjustedGrades(t *testing.T) {
	t.Run("no bonus returns base table", func(t *testing.T) {
		grades := AdjustedGrades(0)
		assert.Equal(t, domain.GradeTable, grades)
	})

	t.Run("bonus 1000 rescales to 100", func(t *testing.T) {
		grades := AdjustedGrades(1000)
		assert.InDelta(t, 100, sumGrades(grades), 1e-9)
		assert.InDelta(t, 0.985*100/100.485, gradeProbability(grades, domain.GradeM), 1e-9)
		assert.InDelta(t, 35*100/100.485, gradeProbability(grades, domain.GradeE), 1e-9)
	})

	t.Run("bonus 100 uses the middle slope", func(t *testing.T) {
		grades := AdjustedGrades(100)
		assert.InDelta(t, 100, sumGrades(grades), 1e-9)
		assert.InDelta(t, 0.825*100/100.325, gradeProbability(grades, domain.GradeM), 1e-9)
	})

	t.Run("base table untouched", func(t *testing.T) {
		AdjustedGrades(5000)
		assert.Equal(t, 0.5, gradeProbability(domain.GradeTable, domain.GradeM))
	})

	t.Run("order is preserved", func(t *testing.T) {
		grades := AdjustedGrades(100)
		for i, g := range grades {
			assert.Equal(t, domain.GradeTable[i].Letter, g.Letter)
		}
	})
}

func TestPickGrade(t *testing.T) {
	grades := domain.GradeTable
	tests := []struct {
		name string
		draw float64
		want domain.Grade
	}{
		{"zero", 0, domain.GradeE},
		{"inside E", 34.99, domain.GradeE},
		{"boundary moves to next", 35, domain.GradeF},
		{"inside C", 80, domain.GradeC},
		{"top of table", 99.9, domain.GradeM},
		{"beyond total falls back", 100, domain.GradeE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PickGrade(grades, tt.draw).Letter)
		})
	}
}
