// Package db provides PostgreSQL persistence for job records.
package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string, logger zerolog.Logger) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool, logger: logger}, nil
}

// EnsureSchema creates the jobs table and its indexes if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}
