package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Request parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgMissingPlayerID   = "Missing X-Player-ID header"

	// Operation failure log messages
	LogMsgOpenBoxFailed       = "Failed to open box"
	LogMsgListBoxesFailed     = "Failed to list boxes"
	LogMsgOddsFailed          = "Failed to compute odds"
	LogMsgPreviewFailed       = "Failed to build preview"
	LogMsgSellItemFailed      = "Failed to sell item"
	LogMsgUseItemFailed       = "Failed to use item"
	LogMsgGetInventoryFailed  = "Failed to get inventory"
	LogMsgRegisterFailed      = "Failed to register player"
	LogMsgGetProfileFailed    = "Failed to get profile"
	LogMsgGetStatsFailed      = "Failed to get player stats"
	LogMsgRecalculateFailed   = "Failed to recalculate player stats"
	LogMsgWeaponStatsFailed   = "Failed to get weapon stats"
	LogMsgCreateListingFailed = "Failed to create listing"
	LogMsgBuyListingFailed    = "Failed to buy listing"
	LogMsgCancelFailed        = "Failed to cancel listing"
	LogMsgMarketQueryFailed   = "Failed to query market"
)

// Query parameter names
const (
	QueryParamN        = "n"
	QueryParamLimit    = "limit"
	QueryParamOffset   = "offset"
	QueryParamWeaponID = "weapon_id"
	QueryParamRarity   = "rarity"
	QueryParamGrade    = "grade"
	QueryParamConta    = "conta"
	QueryParamMinPrice = "min_price"
	QueryParamMaxPrice = "max_price"
	QueryParamSearch   = "search"
)

// Path parameter names
const (
	PathParamID = "id"
)

// HeaderPlayerID carries the verified player id forwarded by the gateway
const HeaderPlayerID = "X-Player-ID"

// Preview bounds
const (
	DefaultPreviewSize = 30
	MaxPreviewSize     = 100
)
