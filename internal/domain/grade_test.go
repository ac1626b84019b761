package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeTable_SumsToHundred(t *testing.T) {
	total := 0.0
	for _, g := range GradeTable {
		total += g.Probability
	}
	assert.InDelta(t, 100.0, total, 1e-9)
	assert.Equal(t, GradeE, GradeTable[0].Letter)
	assert.Equal(t, GradeM, GradeTable[len(GradeTable)-1].Letter)
}

func TestParseGrade(t *testing.T) {
	g, err := ParseGrade("S")
	require.NoError(t, err)
	assert.Equal(t, GradeS, g)

	_, err = ParseGrade("Z")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestRarity_TextRoundTrip(t *testing.T) {
	for _, r := range AllRarities {
		text, err := r.MarshalText()
		require.NoError(t, err)

		var parsed Rarity
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, r, parsed)
	}

	_, err := ParseRarity("shiny")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestRarity_AtLeast(t *testing.T) {
	assert.True(t, RarityAncestral.AtLeast(RarityEpic))
	assert.True(t, RarityEpic.AtLeast(RarityEpic))
	assert.False(t, RarityRare.AtLeast(RarityEpic))
}

func TestErrors_ClassifiedMatchTaxonomy(t *testing.T) {
	assert.True(t, errors.Is(ErrSelfPurchase, ErrConflict))
	assert.True(t, errors.Is(ErrListingNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrPriceTooLow, ErrValidation))
	assert.False(t, errors.Is(ErrSelfPurchase, ErrValidation))

	cause := errors.New("connection reset")
	wrapped := Internal("insert item", cause)
	assert.True(t, errors.Is(wrapped, ErrInternal))
	assert.True(t, errors.Is(wrapped, cause))
	assert.Nil(t, Internal("noop", nil))
}

func TestPassiveAggregate_Levels(t *testing.T) {
	a := PassiveAggregate{Luck: 15.9, GradeBonus: -2}
	assert.Equal(t, 15, a.LuckLevel())
	assert.Equal(t, 0, a.GradeBonusLevel())
	assert.Len(t, a.Map(), 7)
}
