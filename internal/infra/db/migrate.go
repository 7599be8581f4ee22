package db

import (
	"context"
	"fmt"

	"ecommerce-api/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate applies the schema idempotently at startup. Table names come from
// configuration so environments can share one database.
func Migrate(ctx context.Context, pool *pgxpool.Pool, tables config.TablesConfig) error {
	products := pgx.Identifier{tables.Products}.Sanitize()
	orders := pgx.Identifier{tables.Orders}.Sanitize()
	orderProducts := pgx.Identifier{tables.Orders + "_products"}.Sanitize()
	events := pgx.Identifier{tables.Events}.Sanitize()

	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id           UUID PRIMARY KEY,
				product_name TEXT NOT NULL,
				code         TEXT NOT NULL,
				price        NUMERIC(12,2) NOT NULL CHECK (price >= 0),
				model        TEXT NOT NULL DEFAULT ''
			)`, products),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				customer_email   TEXT NOT NULL,
				order_id         UUID NOT NULL,
				created_at       TIMESTAMPTZ NOT NULL,
				shipping_type    TEXT NOT NULL,
				shipping_carrier TEXT NOT NULL,
				payment_type     TEXT NOT NULL,
				total_price      NUMERIC(12,2) NOT NULL,
				PRIMARY KEY (customer_email, order_id)
			)`, orders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				customer_email TEXT NOT NULL,
				order_id       UUID NOT NULL,
				line_no        INT NOT NULL,
				code           TEXT NOT NULL,
				price          NUMERIC(12,2) NOT NULL,
				PRIMARY KEY (customer_email, order_id, line_no),
				FOREIGN KEY (customer_email, order_id) REFERENCES %s (customer_email, order_id) ON DELETE CASCADE
			)`, orderProducts, orders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				pk         TEXT NOT NULL,
				sk         TEXT NOT NULL,
				email      TEXT NOT NULL DEFAULT '',
				request_id TEXT NOT NULL DEFAULT '',
				event_type TEXT NOT NULL,
				product_id UUID NOT NULL,
				price      NUMERIC(12,2) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				expires_at TIMESTAMPTZ NOT NULL
			)`, events),
		// No primary key on the event log: same-type mutations of one code
		// within the same millisecond collide on (pk, sk) and both must survive.
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (pk, sk)`,
			pgx.Identifier{"idx_" + tables.Events + "_pk_sk"}.Sanitize(), events),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (expires_at)`,
			pgx.Identifier{"idx_" + tables.Events + "_expires_at"}.Sanitize(), events),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
