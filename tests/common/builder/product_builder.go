//go:build unit || e2e

package builder

import (
	domproduct "ecommerce-api/internal/domain/product"
	reqdto "ecommerce-api/internal/handler/dto/request"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID    uuid.UUID
	Name  string
	Code  string
	Price decimal.Decimal
	Model string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:    uuid.New(),
		Name:  "Gaming Keyboard",
		Code:  "KBD-001",
		Price: decimal.NewFromFloat(129.90),
		Model: "RGB-87",
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithCode(code string) *ProductBuilder {
	b.Code = code
	return b
}

func (b *ProductBuilder) WithPrice(price decimal.Decimal) *ProductBuilder {
	b.Price = price
	return b
}

// Build methods
func (b *ProductBuilder) BuildDomain() (*domproduct.Product, error) {
	return domproduct.NewProduct(b.Name, b.Code, b.Price, b.Model)
}

func (b *ProductBuilder) BuildStored() *domproduct.Product {
	return domproduct.ReconstructProduct(b.ID, b.Name, b.Code, b.Price, b.Model)
}

func (b *ProductBuilder) BuildRequestDTO() reqdto.ProductRequest {
	return reqdto.ProductRequest{
		Name:  b.Name,
		Code:  b.Code,
		Price: b.Price,
		Model: b.Model,
	}
}

func (b *ProductBuilder) BuildInput() commands.ProductInput {
	return commands.ProductInput{
		Name:  b.Name,
		Code:  b.Code,
		Price: b.Price,
		Model: b.Model,
	}
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:    b.ID,
		Name:  b.Name,
		Code:  b.Code,
		Price: b.Price,
		Model: b.Model,
	}
}
