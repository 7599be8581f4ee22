package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCustomerEmail  = errors.New("customer email cannot be empty")
	ErrNoProducts          = errors.New("order must reference at least one product")
	ErrInvalidPaymentType  = errors.New("invalid payment type")
	ErrInvalidShippingType = errors.New("invalid shipping type")
	ErrInvalidCarrier      = errors.New("invalid carrier")
	ErrNegativePrice       = errors.New("product snapshot price cannot be negative")
)

// ProductSnapshot is the slice of catalog state an order captures per line
// item. Later catalog changes never reach back into it.
type ProductSnapshot struct {
	ID    uuid.UUID
	Code  string
	Price decimal.Decimal
}

type Shipping struct {
	Type    ShippingType
	Carrier CarrierType
}

type Billing struct {
	Payment    PaymentType
	TotalPrice decimal.Decimal
}

// LineItem is one snapshotted product inside a persisted order.
type LineItem struct {
	Code  string
	Price decimal.Decimal
}

type Order struct {
	customerEmail string
	id            uuid.UUID
	createdAt     time.Time
	shipping      Shipping
	billing       Billing
	products      []LineItem
}

// BuildOrder turns resolved product snapshots into an order value. Snapshots
// arrive in request order; duplicates stay as repeated line items and each
// occurrence counts toward the total. Identity and createdAt remain zero
// until the store assigns them.
func BuildOrder(customerEmail string, payment PaymentType, shipping Shipping, products []ProductSnapshot) (*Order, error) {
	if strings.TrimSpace(customerEmail) == "" {
		return nil, ErrEmptyCustomerEmail
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	if !payment.Valid() {
		return nil, ErrInvalidPaymentType
	}
	if !shipping.Type.Valid() {
		return nil, ErrInvalidShippingType
	}
	if !shipping.Carrier.Valid() {
		return nil, ErrInvalidCarrier
	}

	total := decimal.Zero
	items := make([]LineItem, 0, len(products))
	for _, p := range products {
		if p.Price.IsNegative() {
			return nil, ErrNegativePrice
		}
		total = total.Add(p.Price)
		items = append(items, LineItem{Code: p.Code, Price: p.Price})
	}

	return &Order{
		customerEmail: customerEmail,
		shipping:      shipping,
		billing:       Billing{Payment: payment, TotalPrice: total},
		products:      items,
	}, nil
}

func ReconstructOrder(
	customerEmail string,
	id uuid.UUID,
	createdAt time.Time,
	shipping Shipping,
	billing Billing,
	products []LineItem,
) *Order {
	return &Order{
		customerEmail: customerEmail,
		id:            id,
		createdAt:     createdAt,
		shipping:      shipping,
		billing:       billing,
		products:      products,
	}
}

func (o *Order) CustomerEmail() string { return o.customerEmail }
func (o *Order) ID() uuid.UUID         { return o.id }
func (o *Order) CreatedAt() time.Time  { return o.createdAt }
func (o *Order) Shipping() Shipping    { return o.shipping }
func (o *Order) Billing() Billing      { return o.billing }
func (o *Order) Products() []LineItem  { return o.products }
