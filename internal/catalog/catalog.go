// Package catalog holds the static weapon and box registry. It is built once
// at process start and never mutated afterwards.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/LootForge_Go/internal/domain"
)

// Catalog is an immutable weapon and box registry
type Catalog struct {
	weapons  []domain.Weapon
	byID     map[int]int
	boxes    []domain.Box
	boxByID  map[int]int
	byBorder map[string]int
	defaults map[defaultKey]*domain.Passive
}

type defaultKey struct {
	rarity domain.Rarity
	boxID  int
}

// New validates the definitions and builds a catalog. Box membership of each
// weapon is derived from the box weight maps.
func New(weapons []domain.Weapon, boxes []domain.Box) (*Catalog, error) {
	c := &Catalog{
		weapons:  make([]domain.Weapon, len(weapons)),
		byID:     make(map[int]int, len(weapons)),
		boxes:    make([]domain.Box, len(boxes)),
		boxByID:  make(map[int]int, len(boxes)),
		byBorder: make(map[string]int),
		defaults: defaultPassives(),
	}

	copy(c.weapons, weapons)
	for i := range c.weapons {
		w := &c.weapons[i]
		if _, dup := c.byID[w.ID]; dup {
			return nil, fmt.Errorf(ErrMsgDuplicateWeapon, w.ID)
		}
		if w.BasePrice < 0 {
			return nil, fmt.Errorf(ErrMsgNegativePrice, w.ID)
		}
		if w.NonGradable && w.BorderUnlockID == "" {
			return nil, fmt.Errorf(ErrMsgMissingBorder, w.ID)
		}
		w.Boxes = nil
		c.byID[w.ID] = i
		if w.BorderUnlockID != "" {
			c.byBorder[w.BorderUnlockID] = i
		}
	}

	copy(c.boxes, boxes)
	for i := range c.boxes {
		b := &c.boxes[i]
		if _, dup := c.boxByID[b.ID]; dup {
			return nil, fmt.Errorf(ErrMsgDuplicateBox, b.ID)
		}
		if len(b.Weights) == 0 {
			return nil, fmt.Errorf(ErrMsgEmptyBox, b.ID)
		}
		weights := make(map[int]float64, len(b.Weights))
		for weaponID, weight := range b.Weights {
			idx, ok := c.byID[weaponID]
			if !ok {
				return nil, fmt.Errorf(ErrMsgUnknownWeaponInBox, b.ID, weaponID)
			}
			if weight <= 0 {
				return nil, fmt.Errorf(ErrMsgNonPositiveWeight, b.ID, weaponID)
			}
			weights[weaponID] = weight
			c.weapons[idx].Boxes = append(c.weapons[idx].Boxes, b.ID)
		}
		b.Weights = weights
		c.boxByID[b.ID] = i
	}

	for i := range c.weapons {
		sort.Ints(c.weapons[i].Boxes)
	}
	sort.Slice(c.boxes, func(i, j int) bool { return c.boxes[i].ID < c.boxes[j].ID })
	for i := range c.boxes {
		c.boxByID[c.boxes[i].ID] = i
	}

	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(weaponDefinitions(), boxDefinitions())
	if err != nil {
		panic(fmt.Sprintf("invalid built-in catalog: %v", err))
	}
	return c
})

// Default returns the built-in catalog
func Default() *Catalog {
	return defaultCatalog()
}

// Weapon looks up a weapon by id
func (c *Catalog) Weapon(id int) (*domain.Weapon, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrWeaponNotFound, id)
	}
	return &c.weapons[idx], nil
}

// Weapons returns every weapon ordered by id
func (c *Catalog) Weapons() []*domain.Weapon {
	out := make([]*domain.Weapon, 0, len(c.weapons))
	for i := range c.weapons {
		out = append(out, &c.weapons[i])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Box looks up a box by id
func (c *Catalog) Box(id int) (*domain.Box, error) {
	idx, ok := c.boxByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrBoxNotFound, id)
	}
	return &c.boxes[idx], nil
}

// Boxes returns every box ordered by id
func (c *Catalog) Boxes() []*domain.Box {
	out := make([]*domain.Box, 0, len(c.boxes))
	for i := range c.boxes {
		out = append(out, &c.boxes[i])
	}
	return out
}

// WeaponsInBox returns the weapons that can drop from a box, ordered by id
func (c *Catalog) WeaponsInBox(boxID int) ([]*domain.Weapon, error) {
	box, err := c.Box(boxID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Weapon, 0, len(box.Weights))
	for weaponID := range box.Weights {
		out = append(out, &c.weapons[c.byID[weaponID]])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// PassiveFor returns the weapon's declared passive, or the rarity/box default
// when it declares none. The result may be nil.
func (c *Catalog) PassiveFor(w *domain.Weapon, boxID int) *domain.Passive {
	if w.Passive != nil {
		return w.Passive
	}
	return c.defaults[defaultKey{rarity: w.Rarity, boxID: boxID}]
}

// BorderWeapon returns the weapon that unlocks a border when used
func (c *Catalog) BorderWeapon(borderID string) (*domain.Weapon, bool) {
	idx, ok := c.byBorder[borderID]
	if !ok {
		return nil, false
	}
	return &c.weapons[idx], true
}
