package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/pkg/config"
	"ecommerce-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// OrderRepository keys orders by (customer_email, order_id) and stores line
// items in a companion table, one row per occurrence so duplicates survive.
type OrderRepository struct {
	pool       *pgxpool.Pool
	clock      clock.Clock
	table      string
	itemsTable string
}

func NewOrderRepository(pool *pgxpool.Pool, c clock.Clock, tables config.TablesConfig) *OrderRepository {
	return &OrderRepository{
		pool:       pool,
		clock:      c,
		table:      pgx.Identifier{tables.Orders}.Sanitize(),
		itemsTable: pgx.Identifier{tables.Orders + "_products"}.Sanitize(),
	}
}

type orderRow struct {
	Email           string
	ID              uuid.UUID
	CreatedAt       time.Time
	ShippingType    string
	ShippingCarrier string
	PaymentType     string
	TotalPrice      string
}

// Create assigns the order identity and creation instant here, not in the
// domain layer, so one place controls key generation.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	id := uuid.New()
	createdAt := r.clock.Now().UTC()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	insertOrder := fmt.Sprintf(`
		INSERT INTO %s (customer_email, order_id, created_at, shipping_type, shipping_carrier, payment_type, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.table)
	_, err = tx.Exec(ctx, insertOrder,
		o.CustomerEmail(), id, createdAt,
		string(o.Shipping().Type), string(o.Shipping().Carrier),
		string(o.Billing().Payment), o.Billing().TotalPrice.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert order", err)
	}

	insertItem := fmt.Sprintf(`
		INSERT INTO %s (customer_email, order_id, line_no, code, price)
		VALUES ($1, $2, $3, $4, $5)
	`, r.itemsTable)
	for i, item := range o.Products() {
		if _, err := tx.Exec(ctx, insertItem, o.CustomerEmail(), id, i, item.Code, item.Price.String()); err != nil {
			return nil, infra.WrapRepoErr("failed to insert order item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit order", err)
	}

	return order.ReconstructOrder(o.CustomerEmail(), id, createdAt, o.Shipping(), o.Billing(), o.Products()), nil
}

// Delete removes the order and returns its prior state. Line items go first
// inside the same transaction so the returned value still includes them.
func (r *OrderRepository) Delete(ctx context.Context, email string, orderID uuid.UUID) (*order.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	deleteItems := fmt.Sprintf(`
		DELETE FROM %s
		WHERE customer_email = $1 AND order_id = $2
		RETURNING code, price::text
	`, r.itemsTable)
	rows, err := tx.Query(ctx, deleteItems, email, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete order items", err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, err
	}

	deleteOrder := fmt.Sprintf(`
		DELETE FROM %s
		WHERE customer_email = $1 AND order_id = $2
		RETURNING customer_email, order_id, created_at, shipping_type, shipping_carrier, payment_type, total_price::text
	`, r.table)
	var row orderRow
	err = tx.QueryRow(ctx, deleteOrder, email, orderID).Scan(
		&row.Email, &row.ID, &row.CreatedAt,
		&row.ShippingType, &row.ShippingCarrier, &row.PaymentType, &row.TotalPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete order", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit order deletion", err)
	}

	return row.toEntity(items)
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*queries.OrderView, error) {
	query := fmt.Sprintf(`
		SELECT customer_email, order_id, created_at, shipping_type, shipping_carrier, payment_type, total_price::text
		FROM %s
		ORDER BY customer_email, order_id ASC
	`, r.table)
	return r.queryViews(ctx, query)
}

func (r *OrderRepository) FindByEmail(ctx context.Context, email string) ([]*queries.OrderView, error) {
	query := fmt.Sprintf(`
		SELECT customer_email, order_id, created_at, shipping_type, shipping_carrier, payment_type, total_price::text
		FROM %s
		WHERE customer_email = $1
		ORDER BY order_id ASC
	`, r.table)
	return r.queryViews(ctx, query, email)
}

func (r *OrderRepository) FindOne(ctx context.Context, email string, orderID uuid.UUID) (*queries.OrderView, error) {
	query := fmt.Sprintf(`
		SELECT customer_email, order_id, created_at, shipping_type, shipping_carrier, payment_type, total_price::text
		FROM %s
		WHERE customer_email = $1 AND order_id = $2
	`, r.table)

	var row orderRow
	err := r.pool.QueryRow(ctx, query, email, orderID).Scan(
		&row.Email, &row.ID, &row.CreatedAt,
		&row.ShippingType, &row.ShippingCarrier, &row.PaymentType, &row.TotalPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query order", err)
	}

	items, err := r.loadItems(ctx, email, orderID)
	if err != nil {
		return nil, err
	}
	return row.toView(items)
}

func (r *OrderRepository) queryViews(ctx context.Context, query string, args ...any) ([]*queries.OrderView, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query orders", err)
	}
	defer rows.Close()

	orderRows := make([]orderRow, 0)
	for rows.Next() {
		var row orderRow
		if err := rows.Scan(
			&row.Email, &row.ID, &row.CreatedAt,
			&row.ShippingType, &row.ShippingCarrier, &row.PaymentType, &row.TotalPrice,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		orderRows = append(orderRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}

	views := make([]*queries.OrderView, 0, len(orderRows))
	for _, row := range orderRows {
		items, err := r.loadItems(ctx, row.Email, row.ID)
		if err != nil {
			return nil, err
		}
		view, err := row.toView(items)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, email string, orderID uuid.UUID) ([]order.LineItem, error) {
	query := fmt.Sprintf(`
		SELECT code, price::text
		FROM %s
		WHERE customer_email = $1 AND order_id = $2
		ORDER BY line_no
	`, r.itemsTable)

	rows, err := r.pool.Query(ctx, query, email, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query order items", err)
	}
	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]order.LineItem, error) {
	defer rows.Close()

	items := make([]order.LineItem, 0)
	for rows.Next() {
		var (
			code     string
			priceRaw string
		)
		if err := rows.Scan(&code, &priceRaw); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		price, err := decimal.NewFromString(priceRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored price", err)
		}
		items = append(items, order.LineItem{Code: code, Price: price})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return items, nil
}

func (row orderRow) toEntity(items []order.LineItem) (*order.Order, error) {
	total, err := decimal.NewFromString(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored total price", err)
	}
	return order.ReconstructOrder(
		row.Email, row.ID, row.CreatedAt,
		order.Shipping{Type: order.ShippingType(row.ShippingType), Carrier: order.CarrierType(row.ShippingCarrier)},
		order.Billing{Payment: order.PaymentType(row.PaymentType), TotalPrice: total},
		items,
	), nil
}

func (row orderRow) toView(items []order.LineItem) (*queries.OrderView, error) {
	total, err := decimal.NewFromString(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored total price", err)
	}
	products := make([]queries.OrderProductView, 0, len(items))
	for _, item := range items {
		products = append(products, queries.OrderProductView{Code: item.Code, Price: item.Price})
	}
	return &queries.OrderView{
		Email:           row.Email,
		ID:              row.ID,
		CreatedAt:       row.CreatedAt,
		ShippingType:    row.ShippingType,
		ShippingCarrier: row.ShippingCarrier,
		PaymentType:     row.PaymentType,
		TotalPrice:      total,
		Products:        products,
	}, nil
}
