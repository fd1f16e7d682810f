// Package db owns the pgx connection pool and schema migrations.
package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"reservation-service/internal/pkg/config"
	"reservation-service/internal/pkg/errs"
)

// Connect opens a connection pool against the configured database and
// verifies it with a ping.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, errs.NewDb(err)
	}
	poolCfg.MaxConns = cfg.MaxConnects

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errs.NewDb(err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.NewDb(err)
	}
	return pool, nil
}
