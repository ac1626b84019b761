package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeInventoryChanged is published after any committed inventory mutation
	EventTypeInventoryChanged = "inventory.changed"

	// EventTypeBoxOpened is published when a player opens a box
	EventTypeBoxOpened = "box.opened"

	// EventTypeItemSold is published when an item is sold to the system
	EventTypeItemSold = "item.sold"

	// EventTypeItemUsed is published when a border item is consumed
	EventTypeItemUsed = "item.used"

	// EventTypeListingCreated is published when an item is listed on the market
	EventTypeListingCreated = "market.listed"

	// EventTypeListingSold is published when a listing is bought
	EventTypeListingSold = "market.sold"

	// EventTypeListingCancelled is published when a seller cancels a listing
	EventTypeListingCancelled = "market.cancelled"
)

// Inventory change reasons carried in InventoryChangedPayload
const (
	ChangeReasonBoxOpened = "box_opened"
	ChangeReasonSold      = "sold"
	ChangeReasonUsed      = "used"
	ChangeReasonTraded    = "traded"
	ChangeReasonManual    = "manual"
)
