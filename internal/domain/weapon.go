package domain

import (
	"fmt"
	"strings"
)

// Rarity is the drop tier of a weapon. Higher values are rarer.
type Rarity int

// Rarity tiers in rank order
const (
	RarityCommon Rarity = iota + 1
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
	RarityMythic
	RarityAncestral
)

var rarityNames = map[Rarity]string{
	RarityCommon:    "common",
	RarityUncommon:  "uncommon",
	RarityRare:      "rare",
	RarityEpic:      "epic",
	RarityLegendary: "legendary",
	RarityMythic:    "mythic",
	RarityAncestral: "ancestral",
}

// AllRarities lists every tier in rank order
var AllRarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
	RarityAncestral,
}

func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rarity(%d)", int(r))
}

// AtLeast reports whether r ranks at or above other
func (r Rarity) AtLeast(other Rarity) bool {
	return r >= other
}

// MarshalText encodes the rarity by name
func (r Rarity) MarshalText() ([]byte, error) {
	if _, ok := rarityNames[r]; !ok {
		return nil, fmt.Errorf("unknown rarity %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a rarity name
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRarity converts a rarity name to its tier
func ParseRarity(s string) (Rarity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range rarityNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rarity %q", ErrValidation, s)
}

// WeaponType is the weapon family
type WeaponType string

// Weapon families
const (
	WeaponTypePistol  WeaponType = "pistol"
	WeaponTypeRifle   WeaponType = "rifle"
	WeaponTypeAssault WeaponType = "assault_rifle"
	WeaponTypeSMG     WeaponType = "smg"
	WeaponTypeShotgun WeaponType = "shotgun"
	WeaponTypeSniper  WeaponType = "sniper"
	WeaponTypeLMG     WeaponType = "lmg"
	WeaponTypeKnife   WeaponType = "knife"
	WeaponTypeBorder  WeaponType = "border"
)

// Weapon is a static catalog entry. Weapons are created once at startup and
// never mutated.
type Weapon struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Type      WeaponType `json:"type"`
	Rarity    Rarity     `json:"rarity"`
	BasePrice float64    `json:"base_price"`
	Passive   *Passive   `json:"passive,omitempty"`
	Boxes     []int      `json:"boxes"`
	Icon      string     `json:"icon"`

	// NonGradable items are cosmetic unlocks: they skip grade and conta
	// resolution and keep their declared passive as-is.
	NonGradable    bool   `json:"non_gradable"`
	BorderUnlockID string `json:"border_unlock_id,omitempty"`
}

// InBox reports whether the weapon can drop from the given box
func (w *Weapon) InBox(boxID int) bool {
	for _, id := range w.Boxes {
		if id == boxID {
			return true
		}
	}
	return false
}

// Box is a purchasable loot box with unnormalized drop weights per weapon id
type Box struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Price   int64           `json:"price"`
	BaseExp int             `json:"base_exp"`
	Weights map[int]float64 `json:"weights"`
}
