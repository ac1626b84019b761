package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:                  8080,
		LogLevel:              DefaultLogLevel,
		LogFormat:             DefaultLogFormat,
		Environment:           DefaultEnvironment,
		DBPassword:            "postgres",
		DBMaxConns:            DefaultDBMaxConns,
		APIKey:                "k",
		MaxRequestBytes:       DefaultMaxRequestBytes,
		WorkerCount:           DefaultWorkerCount,
		WorkerQueueSize:       DefaultWorkerQueueSize,
		RecalcAttempts:        DefaultRecalcAttempts,
		EventMaxRetries:       DefaultEventMaxRetries,
		SweepInterval:         DefaultSweepInterval,
		StatsCacheSize:        DefaultStatsCacheSize,
		DistributionCacheSize: DefaultDistributionCacheSize,
		RateLimitRPS:          DefaultRateLimitRPS,
		StartingBalance:       decimal.NewFromInt(1000),
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT"},
		{"workers", func(c *Config) { c.WorkerCount = 0 }, "WORKER_COUNT"},
		{"queue", func(c *Config) { c.WorkerQueueSize = -1 }, "WORKER_QUEUE_SIZE"},
		{"recalc attempts", func(c *Config) { c.RecalcAttempts = 0 }, "RECALC_MAX_ATTEMPTS"},
		{"sweep", func(c *Config) { c.SweepInterval = 0 }, "SWEEP_INTERVAL"},
		{"cache", func(c *Config) { c.StatsCacheSize = 0 }, "STATS_CACHE_SIZE"},
		{"balance", func(c *Config) { c.StartingBalance = decimal.NewFromInt(-5) }, "STARTING_BALANCE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.APIKey = ""
	cfg.Port = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
	assert.Contains(t, err.Error(), "PORT")
}

func TestWarnings(t *testing.T) {
	t.Run("silent outside production", func(t *testing.T) {
		assert.Empty(t, validConfig().Warnings())
	})

	t.Run("production with example values", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		cfg.RateLimitRPS = 0
		cfg.AutoMigrate = true

		warnings := cfg.Warnings()

		require.Len(t, warnings, 4)
		assert.Contains(t, warnings[0], "DB_PASSWORD")
		assert.Contains(t, warnings[1], "API_KEY")
		assert.Contains(t, warnings[2], "RATE_LIMIT_RPS")
		assert.Contains(t, warnings[3], "AUTO_MIGRATE")
	})

	t.Run("hardened production", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "prod"
		cfg.DBPassword = "a-real-secret"
		cfg.APIKey = "0123456789abcdef0123"

		assert.Empty(t, cfg.Warnings())
	})
}
