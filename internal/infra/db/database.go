package db

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"stelwing-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	applicationName = "stelwing-booking"
	connectTimeout  = 10 * time.Second
)

// Connect opens the pool and pings it. Every session carries the configured
// lock_timeout so a seat row lock never blocks a commit indefinitely.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 10 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second

	params := poolCfg.ConnConfig.RuntimeParams
	params["application_name"] = applicationName
	if cfg.LockTimeout > 0 {
		params["lock_timeout"] = strconv.FormatInt(cfg.LockTimeout.Milliseconds(), 10)
	}
	// a crashed handler must not pin seat locks behind an idle transaction
	params["idle_in_transaction_session_timeout"] = "60000"

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connected",
		"host", cfg.Host, "database", cfg.DBName, "max_conns", poolCfg.MaxConns, "lock_timeout", cfg.LockTimeout)
	return pool, nil
}
