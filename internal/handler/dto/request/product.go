package request

import (
	"ecommerce-api/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name  string          `json:"productName" binding:"required,max=255"`
	Code  string          `json:"code" binding:"required"`
	Price decimal.Decimal `json:"price"`
	Model string          `json:"model"`
}

func (r ProductRequest) ToInput() commands.ProductInput {
	return commands.ProductInput{
		Name:  r.Name,
		Code:  r.Code,
		Price: r.Price,
		Model: r.Model,
	}
}
