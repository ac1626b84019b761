package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeCheckViolation is raised when a CHECK constraint fails
	PgErrorCodeCheckViolation = "23514"

	// PgErrorCodeForeignKeyViolation is raised when a referenced row is missing
	PgErrorCodeForeignKeyViolation = "23503"
)

// Constraint names the repositories translate into domain errors
const (
	ConstraintPlayersUsername   = "players_username_key"
	ConstraintActiveItemListing = "idx_market_listings_active_item"
	ConstraintPlayersBalance    = "players_balance_check"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToInsertPlayer    = "failed to insert player"
	ErrMsgFailedToGetPlayer       = "failed to get player"
	ErrMsgFailedToLockPlayer      = "failed to lock player"
	ErrMsgFailedToLockPlayers     = "failed to lock players"
	ErrMsgFailedToAdjustBalance   = "failed to adjust balance"
	ErrMsgFailedToAddExperience   = "failed to add experience"
	ErrMsgFailedToSaveStats       = "failed to save stats"
	ErrMsgFailedToGetUnlocks      = "failed to get unlocks"
	ErrMsgFailedToUnlockWeapon    = "failed to unlock weapon"
	ErrMsgFailedToUnlockIcon      = "failed to unlock icon"
	ErrMsgFailedToUnlockBorder    = "failed to unlock border"
	ErrMsgFailedToInsertUnlocks   = "failed to insert starting unlocks"
	ErrMsgFailedToGetInventory    = "failed to get inventory"
	ErrMsgFailedToListPlayers     = "failed to list players"
	ErrMsgFailedToGetWeaponStats  = "failed to get weapon stats"
	ErrMsgFailedToListWeaponStats = "failed to list weapon stats"
	ErrMsgFailedToSeedWeaponStats = "failed to seed weapon stats"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToInsertItem       = "failed to insert item"
	ErrMsgFailedToGetItem          = "failed to get item"
	ErrMsgFailedToDeleteItem       = "failed to delete item"
	ErrMsgFailedToTransferItem     = "failed to transfer item"
	ErrMsgFailedToCheckListing     = "failed to check active listing"
	ErrMsgFailedToRecordOpening    = "failed to record opening"
	ErrMsgFailedToRecordRemoval    = "failed to record removal"
	ErrMsgFailedToMarshalPassive   = "failed to marshal passive"
	ErrMsgFailedToUnmarshalPassive = "failed to unmarshal passive"
)

// Error Messages - Market Operations
const (
	ErrMsgFailedToInsertListing     = "failed to insert listing"
	ErrMsgFailedToGetListing        = "failed to get listing"
	ErrMsgFailedToUpdateListing     = "failed to update listing"
	ErrMsgFailedToQueryListings     = "failed to query listings"
	ErrMsgFailedToInsertHistory     = "failed to insert history"
	ErrMsgFailedToQueryHistory      = "failed to query history"
	ErrMsgFailedToQueryMarketStats  = "failed to query market stats"
	ErrMsgFailedToMarshalSnapshot   = "failed to marshal item snapshot"
	ErrMsgFailedToUnmarshalSnapshot = "failed to unmarshal item snapshot"
)
