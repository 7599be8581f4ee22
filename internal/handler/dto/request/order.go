package request

import (
	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type ShippingRequest struct {
	Type    string `json:"type" binding:"required,oneof=ECONOMIC URGENT"`
	Carrier string `json:"carrier" binding:"required,oneof=CORREIOS FEDEX"`
}

type CreateOrderRequest struct {
	Email      string          `json:"email" binding:"required,email"`
	ProductIDs []string        `json:"productIds" binding:"required,min=1,dive,uuid"`
	Payment    string          `json:"paymentType" binding:"required,oneof=CASH DEBIT_CARD CREDIT_CARD"`
	Shipping   ShippingRequest `json:"shipping" binding:"required"`
}

// ToInput keeps the ids in request order, duplicates included. Each
// occurrence stands for its own line item downstream.
func (r CreateOrderRequest) ToInput() (commands.PlaceOrderInput, error) {
	ids := make([]uuid.UUID, 0, len(r.ProductIDs))
	for _, raw := range r.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return commands.PlaceOrderInput{}, err
		}
		ids = append(ids, id)
	}

	return commands.PlaceOrderInput{
		Email:      r.Email,
		ProductIDs: ids,
		Payment:    order.PaymentType(r.Payment),
		Shipping: order.Shipping{
			Type:    order.ShippingType(r.Shipping.Type),
			Carrier: order.CarrierType(r.Shipping.Carrier),
		},
	}, nil
}
