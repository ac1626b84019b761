package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingStatus is the lifecycle state of a market listing
type ListingStatus string

// Listing states. Only active is non-terminal.
const (
	ListingActive    ListingStatus = "active"
	ListingSold      ListingStatus = "sold"
	ListingCancelled ListingStatus = "cancelled"
)

// ItemSnapshot holds the tradeable attributes of an item at listing time
type ItemSnapshot struct {
	WeaponID   int             `json:"weapon_id"`
	WeaponName string          `json:"weapon_name"`
	Rarity     Rarity          `json:"rarity"`
	Grade      *Grade          `json:"grade"`
	Conta      bool            `json:"conta"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Passive    *Passive        `json:"passive,omitempty"`
	Icon       string          `json:"icon"`
}

// Listing is an offer to sell a specific inventory item at a fixed price
type Listing struct {
	ID         string          `json:"id"`
	SellerID   string          `json:"seller_id"`
	ItemID     string          `json:"item_id"`
	Item       ItemSnapshot    `json:"item"`
	Price      decimal.Decimal `json:"price"`
	Status     ListingStatus   `json:"status"`
	BuyerID    *string         `json:"buyer_id,omitempty"`
	ListedAt   time.Time       `json:"listed_at"`
	ResolvedAt *time.Time      `json:"resolved_at,omitempty"`
}

// HistoryRecord is an append-only record of a completed sale
type HistoryRecord struct {
	ID        string          `json:"id"`
	ListingID string          `json:"listing_id"`
	Item      ItemSnapshot    `json:"item"`
	Price     decimal.Decimal `json:"price"`
	SellerID  string          `json:"seller_id"`
	BuyerID   string          `json:"buyer_id"`
	SoldAt    time.Time       `json:"sold_at"`
}

// PurchaseReceipt is returned to the buyer of a listing
type PurchaseReceipt struct {
	ListingID     string          `json:"listing_id"`
	ItemID        string          `json:"item_id"`
	WeaponID      int             `json:"weapon_id"`
	Price         decimal.Decimal `json:"price"`
	SellerID      string          `json:"seller_id"`
	BuyerID       string          `json:"buyer_id"`
	BuyerBalance  decimal.Decimal `json:"buyer_balance"`
	SellerBalance decimal.Decimal `json:"seller_balance"`
	PurchasedAt   time.Time       `json:"purchased_at"`
}

// ListingFilter narrows active listing queries. Zero values mean "any".
type ListingFilter struct {
	WeaponID int
	Rarity   *Rarity
	Grade    *Grade
	Conta    *bool
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
	Limit    int
	Offset   int
}

// WeaponMarketStats summarizes the market for one weapon
type WeaponMarketStats struct {
	WeaponID    int              `json:"weapon_id"`
	ActiveCount int64            `json:"active_count"`
	MinPrice    *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice    *decimal.Decimal `json:"max_price,omitempty"`
	AvgPrice    *decimal.Decimal `json:"avg_price,omitempty"`
	RecentSales []HistoryRecord  `json:"recent_sales"`
}
