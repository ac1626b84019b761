package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// RarityLabel returns the display label of a rarity tier
func RarityLabel(r domain.Rarity) string {
	return cases.Title(language.English).String(r.String())
}

// TypeLabel returns the display label of a weapon family
func TypeLabel(t domain.WeaponType) string {
	switch t {
	case domain.WeaponTypeSMG, domain.WeaponTypeLMG:
		return strings.ToUpper(string(t))
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "_", " "))
}
