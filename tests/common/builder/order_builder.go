//go:build unit || e2e

package builder

import (
	"time"

	domorder "ecommerce-api/internal/domain/order"
	reqdto "ecommerce-api/internal/handler/dto/request"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID        uuid.UUID
	Email     string
	Payment   domorder.PaymentType
	Shipping  domorder.Shipping
	Snapshots []domorder.ProductSnapshot
	CreatedAt time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:      uuid.New(),
		Email:   "customer@example.com",
		Payment: domorder.PaymentCash,
		Shipping: domorder.Shipping{
			Type:    domorder.ShippingEconomic,
			Carrier: domorder.CarrierCorreios,
		},
		Snapshots: []domorder.ProductSnapshot{
			{ID: uuid.New(), Code: "KBD-001", Price: decimal.NewFromFloat(129.90)},
			{ID: uuid.New(), Code: "MSE-002", Price: decimal.NewFromFloat(49.90)},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithEmail(email string) *OrderBuilder {
	b.Email = email
	return b
}

func (b *OrderBuilder) WithSnapshots(snaps ...domorder.ProductSnapshot) *OrderBuilder {
	b.Snapshots = snaps
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	return domorder.BuildOrder(b.Email, b.Payment, b.Shipping, b.Snapshots)
}

func (b *OrderBuilder) BuildStored() *domorder.Order {
	total := decimal.Zero
	items := make([]domorder.LineItem, 0, len(b.Snapshots))
	for _, s := range b.Snapshots {
		total = total.Add(s.Price)
		items = append(items, domorder.LineItem{Code: s.Code, Price: s.Price})
	}
	return domorder.ReconstructOrder(
		b.Email, b.ID, b.CreatedAt, b.Shipping,
		domorder.Billing{Payment: b.Payment, TotalPrice: total},
		items,
	)
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	ids := make([]string, 0, len(b.Snapshots))
	for _, s := range b.Snapshots {
		ids = append(ids, s.ID.String())
	}
	return reqdto.CreateOrderRequest{
		Email:      b.Email,
		ProductIDs: ids,
		Payment:    string(b.Payment),
		Shipping: reqdto.ShippingRequest{
			Type:    string(b.Shipping.Type),
			Carrier: string(b.Shipping.Carrier),
		},
	}
}

func (b *OrderBuilder) BuildInput() commands.PlaceOrderInput {
	ids := make([]uuid.UUID, 0, len(b.Snapshots))
	for _, s := range b.Snapshots {
		ids = append(ids, s.ID)
	}
	return commands.PlaceOrderInput{
		Email:      b.Email,
		ProductIDs: ids,
		Payment:    b.Payment,
		Shipping:   b.Shipping,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	total := decimal.Zero
	products := make([]queries.OrderProductView, 0, len(b.Snapshots))
	for _, s := range b.Snapshots {
		total = total.Add(s.Price)
		products = append(products, queries.OrderProductView{Code: s.Code, Price: s.Price})
	}
	return &queries.OrderView{
		Email:           b.Email,
		ID:              b.ID,
		CreatedAt:       b.CreatedAt,
		ShippingType:    string(b.Shipping.Type),
		ShippingCarrier: string(b.Shipping.Carrier),
		PaymentType:     string(b.Payment),
		TotalPrice:      total,
		Products:        products,
	}
}
