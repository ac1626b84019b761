package config

import (
	"errors"
	"fmt"
	"strings"
)

// Values shipped in example .env files that must not reach production
const (
	exampleDBPassword = "postgres"
	minProdAPIKeyLen  = 16
)

// Validate checks value ranges that getEnv* cannot enforce. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.APIKey != "", "API_KEY environment variable must be set for security")
	check(c.Port > 0 && c.Port <= 65535, "invalid PORT value: %d out of range", c.Port)
	check(c.LogFormat == "text" || c.LogFormat == "json", "invalid LOG_FORMAT %q: want text or json", c.LogFormat)
	check(c.DBMaxConns > 0, "DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
	check(c.MaxRequestBytes > 0, "MAX_REQUEST_BYTES must be positive, got %d", c.MaxRequestBytes)
	check(c.WorkerCount > 0, "WORKER_COUNT must be positive, got %d", c.WorkerCount)
	check(c.WorkerQueueSize > 0, "WORKER_QUEUE_SIZE must be positive, got %d", c.WorkerQueueSize)
	check(c.RecalcAttempts > 0, "RECALC_MAX_ATTEMPTS must be positive, got %d", c.RecalcAttempts)
	check(c.EventMaxRetries >= 0, "EVENT_MAX_RETRIES must not be negative, got %d", c.EventMaxRetries)
	check(c.SweepInterval > 0, "SWEEP_INTERVAL must be positive, got %s", c.SweepInterval)
	check(c.StatsCacheSize > 0, "STATS_CACHE_SIZE must be positive, got %d", c.StatsCacheSize)
	check(c.DistributionCacheSize > 0, "DISTRIBUTION_CACHE_SIZE must be positive, got %d", c.DistributionCacheSize)
	check(!c.StartingBalance.IsNegative(), "invalid STARTING_BALANCE value: %s is negative", c.StartingBalance)

	return errors.Join(errs...)
}

// Warnings lists settings that load fine but are unsafe outside development
func (c *Config) Warnings() []string {
	if !c.IsProduction() {
		return nil
	}

	var warnings []string
	if c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD is the example value - set a real password")
	}
	if len(c.APIKey) < minProdAPIKeyLen {
		warnings = append(warnings, "API_KEY is short - generate one with: openssl rand -hex 32")
	}
	if c.RateLimitRPS <= 0 {
		warnings = append(warnings, "RATE_LIMIT_RPS disables rate limiting")
	}
	if c.AutoMigrate {
		warnings = append(warnings, "AUTO_MIGRATE applies schema changes on every start")
	}
	if strings.EqualFold(c.LogLevel, "debug") {
		warnings = append(warnings, "LOG_LEVEL=debug logs request headers")
	}
	return warnings
}
