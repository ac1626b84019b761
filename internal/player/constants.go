package player

// DefaultStartingBalance is credited to every new player
const DefaultStartingBalance = 1000

// DefaultIconWeaponID is the weapon whose icon every new player starts with
const DefaultIconWeaponID = 3

// Username bounds
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
)

// Log messages
const (
	LogMsgRegisterPlayerCalled = "RegisterPlayer called"
	LogMsgPlayerRegistered     = "Player registered"
	LogErrFailedToCreatePlayer = "Failed to create player"
	LogMsgProfileLoadFailed    = "Failed to load profile"
)

// Log field keys for structured logging
const (
	LogFieldPlayerID = "player_id"
	LogFieldUsername = "username"
	LogFieldError    = "error"
)

// Error context messages for wrapped errors
const (
	ErrContextLoadPlayer    = "failed to load player"
	ErrContextLoadUnlocks   = "failed to load unlocks"
	ErrContextLoadInventory = "failed to load inventory"
	ErrContextLoadStats     = "failed to load weapon stats"
)

// Error message formats
const (
	ErrMsgUsernameLengthFmt = "%w: username must be %d-%d characters"
)
