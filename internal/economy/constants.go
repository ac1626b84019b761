package economy

// SellPriceScale is the number of decimals kept on a system sale price
const SellPriceScale = 4

// Log messages
const (
	LogMsgSellItemCalled = "SellItem called"
	LogMsgItemSold       = "Item sold to system"
	LogMsgUseItemCalled  = "UseItem called"
	LogMsgItemUsed       = "Border item consumed"
	LogMsgBorderOwned    = "Border already unlocked, item consumed anyway"
)

// Log field keys for structured logging
const (
	LogFieldPlayerID = "player_id"
	LogFieldItemID   = "item_id"
	LogFieldWeaponID = "weapon_id"
	LogFieldBorderID = "border_id"
	LogFieldPrice    = "price"
)

// Error context messages for wrapped errors
const (
	ErrContextBeginTx       = "failed to begin transaction"
	ErrContextLockPlayer    = "failed to lock player"
	ErrContextLockItem      = "failed to lock item"
	ErrContextCheckListed   = "failed to check listing state"
	ErrContextDeleteItem    = "failed to delete item"
	ErrContextRecordRemoval = "failed to record weapon removal"
	ErrContextCredit        = "failed to credit sale"
	ErrContextUnlockBorder  = "failed to unlock border"
	ErrContextCommit        = "failed to commit transaction"
)

// Error message formats
const (
	ErrMsgItemNotOwnedFmt  = "%w: item %s"
	ErrMsgItemListedFmt    = "%w: item %s"
	ErrMsgItemNotUsableFmt = "%w: weapon %d has no border unlock"
)
