package repository

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/infra/events"
	"ecommerce-api/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository is append-only from the application's point of view.
// Expired rows are removed by the reaper, never by request handling.
type EventRepository struct {
	pool  *pgxpool.Pool
	table string
}

func NewEventRepository(pool *pgxpool.Pool, tables config.TablesConfig) *EventRepository {
	return &EventRepository{pool: pool, table: pgx.Identifier{tables.Events}.Sanitize()}
}

func (r *EventRepository) Append(ctx context.Context, rec events.Record) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (pk, sk, email, request_id, event_type, product_id, price, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, r.table)

	_, err := r.pool.Exec(ctx, query,
		rec.PK, rec.SK, rec.Email, rec.RequestID,
		rec.EventType, rec.ProductID, rec.Price.String(),
		rec.CreatedAt, rec.ExpiresAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append product event", err)
	}
	return nil
}

// DeleteExpired removes every event whose expiry lies at or before now and
// reports how many rows went away.
func (r *EventRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE expires_at <= $1`, r.table)

	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired events", err)
	}
	return tag.RowsAffected(), nil
}
