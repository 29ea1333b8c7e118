package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS inventory (
		product_id   BIGSERIAL PRIMARY KEY,
		product_name TEXT NOT NULL,
		stock        BIGINT NOT NULL,
		unit_price   NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id          BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_details (
		id         BIGSERIAL PRIMARY KEY,
		order_id   BIGINT NOT NULL REFERENCES orders (id),
		product_id BIGINT NOT NULL,
		quantity   BIGINT NOT NULL,
		unit_price NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id         BIGSERIAL PRIMARY KEY,
		action     TEXT NOT NULL,
		details    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate bootstraps the schema on startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
