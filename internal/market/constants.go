package market

// Read query bounds
const (
	DefaultListingLimit = 50
	MaxListingLimit     = 200
	LowestPricesLimit   = 5
	DefaultHistoryLimit = 20
	RecentSalesLimit    = 5
)

// Log messages
const (
	LogMsgListItemCalled   = "ListItem called"
	LogMsgItemListed       = "Item listed"
	LogMsgBuyListingCalled = "BuyListing called"
	LogMsgListingSold      = "Listing sold"
	LogMsgBuyLostRace      = "Listing resolved by a concurrent request"
	LogMsgListingCancelled = "Listing cancelled"
)

// Log field keys for structured logging
const (
	LogFieldPlayerID  = "player_id"
	LogFieldSellerID  = "seller_id"
	LogFieldBuyerID   = "buyer_id"
	LogFieldItemID    = "item_id"
	LogFieldListingID = "listing_id"
	LogFieldWeaponID  = "weapon_id"
	LogFieldPrice     = "price"
)

// Error context messages for wrapped errors
const (
	ErrContextBeginTx        = "failed to begin transaction"
	ErrContextLockPlayer     = "failed to lock player"
	ErrContextLockPlayers    = "failed to lock players"
	ErrContextLockItem       = "failed to lock item"
	ErrContextCheckListed    = "failed to check listing state"
	ErrContextInsertListing  = "failed to insert listing"
	ErrContextLoadListing    = "failed to load listing"
	ErrContextMarkSold       = "failed to mark listing sold"
	ErrContextMarkCancelled  = "failed to cancel listing"
	ErrContextTransferItem   = "failed to transfer item"
	ErrContextDebitBuyer     = "failed to debit buyer"
	ErrContextCreditSeller   = "failed to credit seller"
	ErrContextInsertHistory  = "failed to record sale"
	ErrContextUnlock         = "failed to unlock for buyer"
	ErrContextCommit         = "failed to commit transaction"
	ErrContextQueryListings  = "failed to query listings"
	ErrContextQueryHistory   = "failed to query history"
	ErrContextQueryStats     = "failed to query market stats"
	ErrContextPlayerNotFound = "player not found"
)

// Error message formats
const (
	ErrMsgPriceTooLowFmt    = "%w: %s"
	ErrMsgPricePrecisionFmt = "%w: price %s has more than %d decimals"
	ErrMsgNotOwnedFmt       = "%w: item %s"
	ErrMsgListedFmt         = "%w: item %s"
	ErrMsgNotActiveFmt      = "%w: listing %s is %s"
	ErrMsgSelfPurchaseFmt   = "%w: listing %s"
	ErrMsgNotSellerFmt      = "%w: listing %s"
	ErrMsgInsufficientFmt   = "%w: balance %s, price %s"
)
