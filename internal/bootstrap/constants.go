package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept at startup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting LootForge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is used when the configured retry count is zero
	EventDefaultMaxRetries = 3

	// EventDefaultRetryDelay is used when the configured retry delay is zero
	EventDefaultRetryDelay = 200 * time.Millisecond

	// EventDefaultDeadLetterPath is used when no dead-letter path is configured
	EventDefaultDeadLetterPath = "logs/deadletter.jsonl"

	// RecalcDeadLetterSuffix names the passive recalculation dead-letter file
	// next to the event dead-letter file.
	RecalcDeadLetterSuffix = ".recalc"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgFailedCreateRecalcDeadLetter   = "failed to open recalculation dead-letter file"
	LogMsgEventDeadLettered              = "Event dead-lettered"
)

// =============================================================================
// Catalog Sync Messages
// =============================================================================

const (
	LogMsgSyncingCatalog        = "Syncing catalog weapon counters"
	LogMsgCatalogSynced         = "Catalog weapon counters seeded"
	LogMsgCatalogUnchanged      = "Catalog weapon counters already present"
	ErrMsgFailedSyncCatalog     = "failed to seed weapon counters"
	ErrMsgCatalogHasNoWeapons   = "catalog has no weapons"
	LogMsgPassiveSweepScheduled = "Passive recalculation sweep scheduled"
	PassiveSweepJobName         = "passive-sweep"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgPassiveSchedulerRegistered = "Passive scheduler registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownWorkers        = "Shutting down background workers..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgWorkerPoolShutdownFailed   = "Worker pool shutdown failed"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgDeadLetterCloseFailed      = "Dead-letter file close failed"
	LogMsgParkedRecalculations       = "Recalculations still parked at shutdown"
)
