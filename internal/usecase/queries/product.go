package queries

import (
	"context"

	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errs.New("product not found")

type ProductView struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"productName"`
	Code  string          `json:"code"`
	Price decimal.Decimal `json:"price"`
	Model string          `json:"model"`
}

type ProductReadStore interface {
	FindAll(ctx context.Context) ([]*ProductView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type ProductQueries interface {
	List(ctx context.Context) ([]*ProductView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) List(ctx context.Context) ([]*ProductView, error) {
	return q.store.FindAll(ctx)
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}
