package passive

import "time"

// Cache defaults
const (
	DefaultStatsCacheSize = 10000
	DefaultStatsCacheTTL  = 5 * time.Minute

	// CacheSchemaVersion is bumped when PassiveAggregate changes shape so that
	// stale cached entries are dropped
	CacheSchemaVersion = "1.0"
)

// Recalculation retry defaults
const (
	DefaultRecalcMaxAttempts = 5
	DefaultRecalcRetryDelay  = time.Second
	DefaultSweepInterval     = 5 * time.Minute

	// SweepPageSize is how many player ids one directory read returns
	SweepPageSize = 500
)

// Log messages
const (
	LogMsgRecalculated         = "Passive stats recalculated"
	LogMsgRecalcFailed         = "Passive recalculation failed, scheduling retry"
	LogMsgRecalcDeadLettered   = "Passive recalculation exhausted retries"
	LogMsgRecalcEnqueueFailed  = "Failed to enqueue passive recalculation"
	LogMsgUnknownBorder        = "Unlocked border has no catalog entry"
	LogMsgDeadLetterWriteError = "Failed to dead-letter passive recalculation"
	LogMsgSweepRequeued        = "Requeued dead-lettered passive recalculations"
	LogMsgSweepPaused          = "Passive sweep paused, worker queue full"
	LogMsgSweepPassComplete    = "Passive sweep pass complete"
)

// Log field keys
const (
	LogFieldPlayerID = "player_id"
	LogFieldAttempt  = "attempt"
	LogFieldDelay    = "delay"
	LogFieldBorder   = "border"
	LogFieldCount    = "count"
	LogFieldCursor   = "cursor"
	LogFieldError    = "error"
)

// Error context messages
const (
	ErrContextLoadInventory = "failed to load inventory"
	ErrContextLoadUnlocks   = "failed to load unlocks"
	ErrContextSaveStats     = "failed to save stats"
	ErrContextQueueFull     = "recalculation queue full"
	ErrContextListPlayers   = "failed to list players"
)
