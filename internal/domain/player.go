package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Player is an account holding a balance and an inventory
type Player struct {
	ID         string           `json:"id"`
	Username   string           `json:"username"`
	Balance    decimal.Decimal  `json:"balance"`
	Experience int64            `json:"experience"`
	Stats      PassiveAggregate `json:"stats"`
	CreatedAt  time.Time        `json:"created_at"`
}

// Unlocks are the permanent cosmetic sets of a player
type Unlocks struct {
	Weapons []int    `json:"weapons"`
	Icons   []string `json:"icons"`
	Borders []string `json:"borders"`
}

// HasBorder reports whether the border id is unlocked
func (u Unlocks) HasBorder(borderID string) bool {
	for _, b := range u.Borders {
		if b == borderID {
			return true
		}
	}
	return false
}

// MinTradeUnit is the smallest currency amount that can change hands
var MinTradeUnit = decimal.New(1, -4)

// CurrencyScale is the number of decimal places kept for currency
const CurrencyScale = 4
