package queries

import (
	"context"
	"time"

	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderProductView struct {
	Code  string          `json:"code"`
	Price decimal.Decimal `json:"price"`
}

type OrderView struct {
	Email           string             `json:"email"`
	ID              uuid.UUID          `json:"id"`
	CreatedAt       time.Time          `json:"createdAt"`
	ShippingType    string             `json:"shippingType"`
	ShippingCarrier string             `json:"shippingCarrier"`
	PaymentType     string             `json:"paymentType"`
	TotalPrice      decimal.Decimal    `json:"totalPrice"`
	Products        []OrderProductView `json:"products"`
}

type OrderReadStore interface {
	FindAll(ctx context.Context) ([]*OrderView, error)
	FindByEmail(ctx context.Context, email string) ([]*OrderView, error)
	FindOne(ctx context.Context, email string, orderID uuid.UUID) (*OrderView, error)
}

type OrderQueries interface {
	List(ctx context.Context) ([]*OrderView, error)
	ListByEmail(ctx context.Context, email string) ([]*OrderView, error)
	GetOne(ctx context.Context, email string, orderID uuid.UUID) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) List(ctx context.Context) ([]*OrderView, error) {
	return q.store.FindAll(ctx)
}

func (q *orderQueriesImpl) ListByEmail(ctx context.Context, email string) ([]*OrderView, error) {
	return q.store.FindByEmail(ctx, email)
}

func (q *orderQueriesImpl) GetOne(ctx context.Context, email string, orderID uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindOne(ctx, email, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return view, nil
}
