package response

import (
	"time"

	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShippingResponse struct {
	Type    string `json:"type"`
	Carrier string `json:"carrier"`
}

type BillingResponse struct {
	Payment    string          `json:"payment"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type OrderProductResponse struct {
	Code  string          `json:"code"`
	Price decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	Email     string                 `json:"email"`
	ID        uuid.UUID              `json:"id"`
	CreatedAt time.Time              `json:"createdAt"`
	Shipping  ShippingResponse       `json:"shipping"`
	Billing   BillingResponse        `json:"billing"`
	Products  []OrderProductResponse `json:"products"`
}

func FromOrder(o *order.Order) *OrderResponse {
	products := make([]OrderProductResponse, 0, len(o.Products()))
	for _, item := range o.Products() {
		products = append(products, OrderProductResponse{Code: item.Code, Price: item.Price})
	}
	return &OrderResponse{
		Email:     o.CustomerEmail(),
		ID:        o.ID(),
		CreatedAt: o.CreatedAt(),
		Shipping: ShippingResponse{
			Type:    string(o.Shipping().Type),
			Carrier: string(o.Shipping().Carrier),
		},
		Billing: BillingResponse{
			Payment:    string(o.Billing().Payment),
			TotalPrice: o.Billing().TotalPrice,
		},
		Products: products,
	}
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	products := make([]OrderProductResponse, 0, len(v.Products))
	for _, item := range v.Products {
		products = append(products, OrderProductResponse{Code: item.Code, Price: item.Price})
	}
	return &OrderResponse{
		Email:     v.Email,
		ID:        v.ID,
		CreatedAt: v.CreatedAt,
		Shipping: ShippingResponse{
			Type:    v.ShippingType,
			Carrier: v.ShippingCarrier,
		},
		Billing: BillingResponse{
			Payment:    v.PaymentType,
			TotalPrice: v.TotalPrice,
		},
		Products: products,
	}
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromOrderView(v))
	}
	return out
}
