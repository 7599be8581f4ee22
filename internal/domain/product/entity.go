package product

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductName   = errors.New("product name cannot be empty")
	ErrEmptyProductCode   = errors.New("product code cannot be empty")
	ErrNegativePrice      = errors.New("product price cannot be negative")
	ErrProductNameTooLong = errors.New("product name is too long (max 255 characters)")
)

const (
	MaxProductNameLength = 255
)

type Product struct {
	id    uuid.UUID
	name  string
	code  string
	price decimal.Decimal
	model string
}

// NewProduct validates catalog input. The id stays zero until the store
// assigns one at creation time.
func NewProduct(name, code string, price decimal.Decimal, model string) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyProductCode
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Product{
		name:  strings.TrimSpace(name),
		code:  strings.TrimSpace(code),
		price: price,
		model: strings.TrimSpace(model),
	}, nil
}

func ReconstructProduct(id uuid.UUID, name, code string, price decimal.Decimal, model string) *Product {
	return &Product{
		id:    id,
		name:  name,
		code:  code,
		price: price,
		model: model,
	}
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyProductName
	}
	if len(name) > MaxProductNameLength {
		return ErrProductNameTooLong
	}
	return nil
}

func (p *Product) ID() uuid.UUID          { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Code() string           { return p.code }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Model() string          { return p.model }
