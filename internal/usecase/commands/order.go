package commands

import (
	"context"

	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductsNotFound = errs.New("some product was not found")
	ErrOrderNotFound    = errs.New("order not found")
)

type PlaceOrderInput struct {
	Email      string
	ProductIDs []uuid.UUID
	Payment    order.PaymentType
	Shipping   order.Shipping
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (*order.Order, error)
	DeleteOrder(ctx context.Context, email string, orderID uuid.UUID) (*order.Order, error)
}

type orderUseCaseImpl struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
}

func NewOrderCommands(orderRepo OrderRepository, productRepo ProductRepository) OrderCommands {
	return &orderUseCaseImpl{orderRepo: orderRepo, productRepo: productRepo}
}

// PlaceOrder runs the order-construction protocol: bulk-resolve every
// requested product id, reject the whole request if any id misses, snapshot
// code+price per id in request order, then persist atomically.
func (uc *orderUseCaseImpl) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*order.Order, error) {
	snapshots, err := uc.resolveProducts(ctx, in.ProductIDs)
	if err != nil {
		return nil, err
	}

	entity, err := order.BuildOrder(in.Email, in.Payment, in.Shipping, snapshots)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	stored, err := uc.orderRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return stored, nil
}

func (uc *orderUseCaseImpl) DeleteOrder(ctx context.Context, email string, orderID uuid.UUID) (*order.Order, error) {
	removed, err := uc.orderRepo.Delete(ctx, email, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return removed, nil
}

// resolveProducts is all-or-nothing: every requested id must resolve or the
// whole request fails. Duplicate ids each resolve independently against the
// bulk-fetched set and become repeated snapshots.
func (uc *orderUseCaseImpl) resolveProducts(ctx context.Context, ids []uuid.UUID) ([]order.ProductSnapshot, error) {
	if len(ids) == 0 {
		return nil, errs.Mark(order.ErrNoProducts, ErrDomainValidation)
	}

	resolved, err := uc.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	snapshots := make([]order.ProductSnapshot, 0, len(ids))
	for _, id := range ids {
		snap, ok := resolved[id]
		if !ok {
			return nil, ErrProductsNotFound
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}
