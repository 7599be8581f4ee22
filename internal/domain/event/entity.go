package event

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductCode = errors.New("event product code cannot be empty")
	ErrInvalidEventType = errors.New("invalid product event type")
)

type Type string

const (
	TypeCreated Type = "CREATED"
	TypeUpdated Type = "UPDATED"
	TypeDeleted Type = "DELETED"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCreated, TypeUpdated, TypeDeleted:
		return true
	default:
		return false
	}
}

// ProductEvent describes one catalog mutation outcome. Key layout and expiry
// belong to the store, not here.
type ProductEvent struct {
	productID    uuid.UUID
	productCode  string
	productPrice decimal.Decimal
	eventType    Type
	email        string
	requestID    string
}

func NewProductEvent(productID uuid.UUID, productCode string, productPrice decimal.Decimal, eventType Type, email, requestID string) (*ProductEvent, error) {
	if productCode == "" {
		return nil, ErrEmptyProductCode
	}
	if !eventType.Valid() {
		return nil, ErrInvalidEventType
	}
	return &ProductEvent{
		productID:    productID,
		productCode:  productCode,
		productPrice: productPrice,
		eventType:    eventType,
		email:        email,
		requestID:    requestID,
	}, nil
}

func (e *ProductEvent) ProductID() uuid.UUID           { return e.productID }
func (e *ProductEvent) ProductCode() string            { return e.productCode }
func (e *ProductEvent) ProductPrice() decimal.Decimal  { return e.productPrice }
func (e *ProductEvent) EventType() Type                { return e.eventType }
func (e *ProductEvent) Email() string                  { return e.email }
func (e *ProductEvent) RequestID() string              { return e.requestID }
