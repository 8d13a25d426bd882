package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the products table definition. It is idempotent.
const Schema = `
	CREATE TABLE IF NOT EXISTS products (
		id       UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name     TEXT NOT NULL,
		details  TEXT NOT NULL,
		price    DOUBLE PRECISION NOT NULL,
		stock    INTEGER NOT NULL,
		image    TEXT NOT NULL,
		category TEXT NOT NULL
	);
`

// EnsureSchema creates the products table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
