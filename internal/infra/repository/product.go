package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/domain/product"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/config"
	"ecommerce-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ProductRepository serves both the write side (domain entities) and the read
// side (views) from one table. Prices travel as text to keep NUMERIC exact.
type ProductRepository struct {
	pool  *pgxpool.Pool
	table string
}

func NewProductRepository(pool *pgxpool.Pool, tables config.TablesConfig) *ProductRepository {
	return &ProductRepository{pool: pool, table: pgx.Identifier{tables.Products}.Sanitize()}
}

type productRow struct {
	ID    uuid.UUID
	Name  string
	Code  string
	Price string
	Model string
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	id := uuid.New()
	query := fmt.Sprintf(`
		INSERT INTO %s (id, product_name, code, price, model)
		VALUES ($1, $2, $3, $4, $5)
	`, r.table)

	_, err := r.pool.Exec(ctx, query, id, p.Name(), p.Code(), p.Price().String(), p.Model())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert product", err)
	}
	return product.ReconstructProduct(id, p.Name(), p.Code(), p.Price(), p.Model()), nil
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, p *product.Product) (*product.Product, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET product_name = $2, code = $3, price = $4, model = $5
		WHERE id = $1
		RETURNING id
	`, r.table)

	var updatedID uuid.UUID
	err := r.pool.QueryRow(ctx, query, id, p.Name(), p.Code(), p.Price().String(), p.Model()).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update product", err)
	}
	return product.ReconstructProduct(updatedID, p.Name(), p.Code(), p.Price(), p.Model()), nil
}

// Delete removes the row and hands back its last stored state in one
// statement, so concurrent deleters cannot observe the same prior value.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
		RETURNING id, product_name, code, price::text, model
	`, r.table)

	var row productRow
	err := r.pool.QueryRow(ctx, query, id).Scan(&row.ID, &row.Name, &row.Code, &row.Price, &row.Model)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to delete product", err)
	}
	return row.toEntity()
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]order.ProductSnapshot, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]order.ProductSnapshot{}, nil
	}

	idStrings := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrings = append(idStrings, id.String())
	}

	query := fmt.Sprintf(`
		SELECT id, code, price::text
		FROM %s
		WHERE id = ANY($1::uuid[])
	`, r.table)

	rows, err := r.pool.Query(ctx, query, idStrings)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query products by ids", err)
	}
	defer rows.Close()

	snapshots := make(map[uuid.UUID]order.ProductSnapshot, len(ids))
	for rows.Next() {
		var (
			id       uuid.UUID
			code     string
			priceRaw string
		)
		if err := rows.Scan(&id, &code, &priceRaw); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product snapshot", err)
		}
		price, err := decimal.NewFromString(priceRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored price", err)
		}
		snapshots[id] = order.ProductSnapshot{ID: id, Code: code, Price: price}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product snapshots", err)
	}
	return snapshots, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*queries.ProductView, error) {
	query := fmt.Sprintf(`
		SELECT id, product_name, code, price::text, model
		FROM %s
		ORDER BY product_name
	`, r.table)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query products", err)
	}
	defer rows.Close()

	views := make([]*queries.ProductView, 0)
	for rows.Next() {
		var row productRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Code, &row.Price, &row.Model); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}
	return views, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	query := fmt.Sprintf(`
		SELECT id, product_name, code, price::text, model
		FROM %s
		WHERE id = $1
	`, r.table)

	var row productRow
	err := r.pool.QueryRow(ctx, query, id).Scan(&row.ID, &row.Name, &row.Code, &row.Price, &row.Model)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query product", err)
	}
	return row.toView()
}

func (row productRow) toEntity() (*product.Product, error) {
	price, err := decimal.NewFromString(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored price", err)
	}
	return product.ReconstructProduct(row.ID, row.Name, row.Code, price, row.Model), nil
}

func (row productRow) toView() (*queries.ProductView, error) {
	price, err := decimal.NewFromString(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored price", err)
	}
	return &queries.ProductView{
		ID:    row.ID,
		Name:  row.Name,
		Code:  row.Code,
		Price: price,
		Model: row.Model,
	}, nil
}
