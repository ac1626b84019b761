package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	AutoMigrate       bool

	APIKey          string // API key for authentication
	TrustedProxies  []string
	RateLimitRPS    float64
	RateLimitBurst  int
	MaxRequestBytes int64

	// Background work
	WorkerCount      int
	WorkerQueueSize  int
	JobTimeout       time.Duration
	EventMaxRetries  int
	EventRetryDelay  time.Duration
	DeadLetterPath   string
	RecalcAttempts   int
	RecalcRetryDelay time.Duration
	SweepInterval    time.Duration

	// Caches
	StatsCacheSize        int
	StatsCacheTTL         time.Duration
	DistributionCacheSize int

	StartingBalance decimal.Decimal
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "lootforge"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		AutoMigrate:       getEnvAsBool("AUTO_MIGRATE", true),

		APIKey:          getEnv("API_KEY", ""),
		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
		RateLimitRPS:    getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst:  getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),
		MaxRequestBytes: int64(getEnvAsInt("MAX_REQUEST_BYTES", DefaultMaxRequestBytes)),

		WorkerCount:      getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:  getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
		JobTimeout:       getEnvAsDuration("JOB_TIMEOUT", DefaultJobTimeout),
		EventMaxRetries:  getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:  getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		DeadLetterPath:   getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		RecalcAttempts:   getEnvAsInt("RECALC_MAX_ATTEMPTS", DefaultRecalcAttempts),
		RecalcRetryDelay: getEnvAsDuration("RECALC_RETRY_DELAY", DefaultRecalcRetryDelay),
		SweepInterval:    getEnvAsDuration("SWEEP_INTERVAL", DefaultSweepInterval),

		StatsCacheSize:        getEnvAsInt("STATS_CACHE_SIZE", DefaultStatsCacheSize),
		StatsCacheTTL:         getEnvAsDuration("STATS_CACHE_TTL", DefaultStatsCacheTTL),
		DistributionCacheSize: getEnvAsInt("DISTRIBUTION_CACHE_SIZE", DefaultDistributionCacheSize),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	balance, err := decimal.NewFromString(getEnv("STARTING_BALANCE", DefaultStartingBalance))
	if err != nil {
		return nil, fmt.Errorf("invalid STARTING_BALANCE value: %w", err)
	}
	cfg.StartingBalance = balance

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go duration strings such as "30s" or "1h30m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection URL with credentials escaped
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// IsProduction reports whether the service runs in a production environment
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Environment)
	return env == "prod" || env == "production"
}
