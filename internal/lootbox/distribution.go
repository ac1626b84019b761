package lootbox

import (
	"sort"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/utils"
)

// Entry is one weapon's share of a box distribution
type Entry struct {
	WeaponID    int     `json:"weapon_id"`
	Probability float64 `json:"probability"`
	// Cumulative is the running probability total up to and including this entry
	Cumulative float64 `json:"-"`
}

// Distribution is a normalized, ordered draw table for one box
type Distribution struct {
	BoxID   int     `json:"box_id"`
	Luck    int     `json:"luck"`
	Entries []Entry `json:"entries"`
}

// Normalize turns unnormalized weights into probabilities summing to 1.
// Entries are ordered by weapon id so the floating summation order, and
// therefore the result, is identical on every call.
func Normalize(weights map[int]float64) []Entry {
	ids := make([]int, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	total := 0.0
	for _, id := range ids {
		total += weights[id]
	}

	entries := make([]Entry, len(ids))
	if total <= 0 {
		return entries[:0]
	}
	for i, id := range ids {
		entries[i] = Entry{WeaponID: id, Probability: weights[id] / total}
	}
	accumulate(entries)
	return entries
}

// LuckMultiplier is the factor applied to epic and rarer drops. It grows
// with luck but never reaches 1 + 1/(LuckDiminishingFactor*100).
func LuckMultiplier(luck int) float64 {
	if luck <= 0 {
		return 1
	}
	// l / (1 + f*l) == (1/f) * l / (l + 1/f)
	scale := 1 / LuckDiminishingFactor
	bonus := scale * utils.DiminishingReturns(float64(luck), scale)
	return 1 + bonus*LuckBonusScale
}

// ApplyLuck boosts every entry whose rarity is at least LuckMinRarity and
// renormalizes the whole table. The input is not modified.
func ApplyLuck(entries []Entry, rarityOf func(weaponID int) domain.Rarity, luck int) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	if luck <= 0 || len(out) == 0 {
		return out
	}

	mult := LuckMultiplier(luck)
	total := 0.0
	for i := range out {
		if rarityOf(out[i].WeaponID).AtLeast(LuckMinRarity) {
			out[i].Probability *= mult
		}
		total += out[i].Probability
	}
	for i := range out {
		out[i].Probability /= total
	}
	accumulate(out)
	return out
}

func accumulate(entries []Entry) {
	running := 0.0
	for i := range entries {
		running += entries[i].Probability
		entries[i].Cumulative = running
	}
}

// Pick returns the weapon of the first entry whose cumulative probability is
// at least draw. A draw above the final total (rounding) picks the last entry.
func (d *Distribution) Pick(draw float64) int {
	n := len(d.Entries)
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if d.Entries[mid].Cumulative < draw {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return d.Entries[lo].WeaponID
}

// Probability returns a weapon's probability, or 0 if it is not in the table
func (d *Distribution) Probability(weaponID int) float64 {
	for _, e := range d.Entries {
		if e.WeaponID == weaponID {
			return e.Probability
		}
	}
	return 0
}
