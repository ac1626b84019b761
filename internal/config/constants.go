package config

import "time"

// Defaults applied when the corresponding variable is unset or malformed
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "lootforge"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultRateLimitRPS    = 20.0
	DefaultRateLimitBurst  = 40
	DefaultMaxRequestBytes = 1 << 20

	DefaultWorkerCount      = 4
	DefaultWorkerQueueSize  = 256
	DefaultJobTimeout       = 10 * time.Second
	DefaultEventMaxRetries  = 3
	DefaultEventRetryDelay  = 200 * time.Millisecond
	DefaultDeadLetterPath   = "logs/deadletter.jsonl"
	DefaultRecalcAttempts   = 5
	DefaultRecalcRetryDelay = 500 * time.Millisecond
	DefaultSweepInterval    = time.Minute

	DefaultStatsCacheSize        = 1000
	DefaultStatsCacheTTL         = 5 * time.Minute
	DefaultDistributionCacheSize = 512

	DefaultStartingBalance = "1000"
)
