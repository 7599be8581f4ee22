package response

import (
	"ecommerce-api/internal/domain/product"
	"ecommerce-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"productName"`
	Code  string          `json:"code"`
	Price decimal.Decimal `json:"price"`
	Model string          `json:"model"`
}

func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:    p.ID(),
		Name:  p.Name(),
		Code:  p.Code(),
		Price: p.Price(),
		Model: p.Model(),
	}
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	var resp ProductResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromProductViews(views []*queries.ProductView) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromProductView(v))
	}
	return out
}
