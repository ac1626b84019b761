package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is one owned weapon copy. Grade and passive are fixed at
// drop time; only ownership and acquisition time ever change.
type InventoryItem struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"owner_id"`
	WeaponID   int             `json:"weapon_id"`
	Grade      *Grade          `json:"grade"`
	Conta      bool            `json:"conta"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Passive    *Passive        `json:"passive,omitempty"`
	AcquiredAt time.Time       `json:"acquired_at"`
}

// LootResult is one draw from a box
type LootResult struct {
	Weapon     *Weapon  `json:"weapon"`
	Grade      *Grade   `json:"grade"`
	Conta      bool     `json:"conta"`
	FinalPrice float64  `json:"final_price"`
	Passive    *Passive `json:"passive,omitempty"`
}

// OpenBoxResult is what a player receives after paying for and opening a box
type OpenBoxResult struct {
	Loot             LootResult      `json:"loot"`
	Item             InventoryItem   `json:"item"`
	PricePaid        decimal.Decimal `json:"price_paid"`
	Balance          decimal.Decimal `json:"balance"`
	ExperienceGained int64           `json:"experience_gained"`
}

// SaleResult is the outcome of selling an item to the system
type SaleResult struct {
	ItemID   string          `json:"item_id"`
	WeaponID int             `json:"weapon_id"`
	Price    decimal.Decimal `json:"price"`
	Balance  decimal.Decimal `json:"balance"`
}

// UseResult is the outcome of consuming a cosmetic unlock item
type UseResult struct {
	ItemID         string `json:"item_id"`
	WeaponID       int    `json:"weapon_id"`
	BorderUnlockID string `json:"border_unlock_id"`
	AlreadyOwned   bool   `json:"already_owned"`
}
