package events

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/internal/domain/event"
	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is the storage shape of one audit event. The partition key groups
// events by product code, the sort key orders them by type and instant.
type Record struct {
	PK        string
	SK        string
	Email     string
	RequestID string
	EventType string
	ProductID uuid.UUID
	Price     decimal.Decimal
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Appender persists one event record.
type Appender interface {
	Append(ctx context.Context, rec Record) error
}

// StorePublisher maps product events onto the key layout the event table uses
// and stamps each record with its expiry.
type StorePublisher struct {
	store Appender
	clock clock.Clock
	ttl   time.Duration
}

func NewStorePublisher(store Appender, c clock.Clock, cfg config.EventsConfig) *StorePublisher {
	return &StorePublisher{store: store, clock: c, ttl: cfg.TTL}
}

func (p *StorePublisher) Publish(ctx context.Context, ev *event.ProductEvent) error {
	now := p.clock.Now().UTC()
	rec := Record{
		PK:        "#product_" + ev.ProductCode(),
		SK:        fmt.Sprintf("%s#%d", ev.EventType(), now.UnixMilli()),
		Email:     ev.Email(),
		RequestID: ev.RequestID(),
		EventType: string(ev.EventType()),
		ProductID: ev.ProductID(),
		Price:     ev.ProductPrice(),
		CreatedAt: now,
		ExpiresAt: now.Add(p.ttl),
	}
	return p.store.Append(ctx, rec)
}
