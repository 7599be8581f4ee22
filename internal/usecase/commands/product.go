package commands

import (
	"context"
	"log/slog"

	"ecommerce-api/internal/domain/event"
	"ecommerce-api/internal/domain/product"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound         = errs.New("product not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ProductInput struct {
	Name  string
	Code  string
	Price decimal.Decimal
	Model string
}

type ProductCommands interface {
	Create(ctx context.Context, in ProductInput, origin Origin) (*product.Product, error)
	Update(ctx context.Context, id uuid.UUID, in ProductInput, origin Origin) (*product.Product, error)
	Delete(ctx context.Context, id uuid.UUID, origin Origin) (*product.Product, error)
}

type productUseCaseImpl struct {
	repo      ProductRepository
	publisher ProductEventPublisher
}

func NewProductCommands(repo ProductRepository, publisher ProductEventPublisher) ProductCommands {
	return &productUseCaseImpl{repo: repo, publisher: publisher}
}

func (uc *productUseCaseImpl) Create(ctx context.Context, in ProductInput, origin Origin) (*product.Product, error) {
	entity, err := product.NewProduct(in.Name, in.Code, in.Price, in.Model)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	stored, err := uc.repo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	uc.publishEvent(ctx, stored, event.TypeCreated, origin)
	return stored, nil
}

func (uc *productUseCaseImpl) Update(ctx context.Context, id uuid.UUID, in ProductInput, origin Origin) (*product.Product, error) {
	entity, err := product.NewProduct(in.Name, in.Code, in.Price, in.Model)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	stored, err := uc.repo.Update(ctx, id, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	uc.publishEvent(ctx, stored, event.TypeUpdated, origin)
	return stored, nil
}

func (uc *productUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, origin Origin) (*product.Product, error) {
	removed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	uc.publishEvent(ctx, removed, event.TypeDeleted, origin)
	return removed, nil
}

// publishEvent records the mutation synchronously. The mutation already
// stands, so a failed append is surfaced in the logs but never rolls the
// product change back.
func (uc *productUseCaseImpl) publishEvent(ctx context.Context, p *product.Product, t event.Type, origin Origin) {
	ev, err := event.NewProductEvent(p.ID(), p.Code(), p.Price(), t, origin.Email, origin.RequestID)
	if err != nil {
		slog.Error("failed to build product event", "error", err, "product_id", p.ID(), "event_type", string(t))
		return
	}
	if err := uc.publisher.Publish(ctx, ev); err != nil {
		slog.Error("failed to publish product event", "error", err, "product_id", p.ID(), "event_type", string(t))
	}
}
