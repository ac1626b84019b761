package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the slice of *pgxpool.Pool that health checks and shutdown need
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool opens a pgx pool and verifies it with a bounded ping. Connections
// identify themselves as ApplicationName in pg_stat_activity.
func NewPool(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	cfg.MaxConns = clampConns(maxConns)
	cfg.MinConns = DefaultMinConnections
	cfg.MaxConnLifetime = maxLife
	cfg.MaxConnIdleTime = maxIdle
	if _, set := cfg.ConnConfig.RuntimeParams["application_name"]; !set {
		cfg.ConnConfig.RuntimeParams["application_name"] = ApplicationName
	}

	ctx, cancel := context.WithTimeout(context.Background(), ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database,
		"max_conns", cfg.MaxConns,
		"max_idle", maxIdle,
		"max_life", maxLife)
	return pool, nil
}

func clampConns(n int) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < DefaultMinConnections:
		return DefaultMinConnections
	default:
		return int32(n)
	}
}
