package database

import (
	"context"
	"database/sql"
	"fmt"

	"mangoadvisory/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Database wraps the process-wide connection pool. It is created once at
// startup and closed on shutdown; everything else receives it by injection.
type Database struct {
	Pool *pgxpool.Pool
}

// Connect opens the connection pool and verifies the database is reachable.
func Connect(ctx context.Context, cfg *config.Config) (*Database, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{Pool: pool}, nil
}

// Close releases the connection pool.
func (d *Database) Close() {
	d.Pool.Close()
}

// Ping verifies the database connection is still alive.
func (d *Database) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// SQLDB returns a database/sql handle over the pool, as required by goose.
// The caller owns the returned handle and must close it.
func (d *Database) SQLDB() *sql.DB {
	return stdlib.OpenDBFromPool(d.Pool)
}
