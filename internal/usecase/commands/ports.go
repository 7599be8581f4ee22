package commands

import (
	"context"

	"ecommerce-api/internal/domain/event"
	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/domain/product"

	"github.com/google/uuid"
)

// Write-side ports. Repositories return reconstructed domain values so the
// command layer never touches read-side view types (CQRS separation).

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) (*product.Product, error)
	// Update replaces the stored fields and fails with KindNotFound when no
	// record exists at id.
	Update(ctx context.Context, id uuid.UUID, p *product.Product) (*product.Product, error)
	// Delete atomically removes and returns the prior value.
	Delete(ctx context.Context, id uuid.UUID) (*product.Product, error)
	// FindByIDs bulk-resolves the requested ids against the live catalog.
	// Absent ids are simply missing from the result map.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]order.ProductSnapshot, error)
}

type OrderRepository interface {
	// Create assigns the order id and createdAt before persisting.
	Create(ctx context.Context, o *order.Order) (*order.Order, error)
	// Delete atomically removes and returns the prior value.
	Delete(ctx context.Context, email string, orderID uuid.UUID) (*order.Order, error)
}

// ProductEventPublisher records a product mutation outcome. Implementations
// may write to a store or hand off to a queue; command logic stays the same.
type ProductEventPublisher interface {
	Publish(ctx context.Context, ev *event.ProductEvent) error
}

// Origin identifies the acting request for the audit trail.
type Origin struct {
	Email     string
	RequestID string
}
