package db

import (
	"context"

	"todo_api/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MaxConns caps the pool; a handler needing a connection while all are in
// use waits until one is released.
const MaxConns = 5

// Connect builds the process-wide connection pool. An unreachable database
// at startup is fatal; there is no retry.
func Connect(dsn string) *pgxpool.Pool {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("invalid database url", "error", err)
	}
	cfg.MaxConns = MaxConns

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("database connected", "max_conns", MaxConns)
	return pool
}
