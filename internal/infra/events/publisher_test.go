//go:build unit

package events_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ecommerce-api/internal/domain/event"
	"ecommerce-api/internal/infra/events"
	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureAppender struct {
	rec events.Record
	err error
}

func (a *captureAppender) Append(_ context.Context, rec events.Record) error {
	a.rec = rec
	return a.err
}

func TestStorePublisher(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cfg := config.EventsConfig{TTL: 300 * time.Second, ReapInterval: time.Minute}

	newEvent := func(t *testing.T) *event.ProductEvent {
		t.Helper()
		ev, err := event.NewProductEvent(
			uuid.New(), "KBD-001", decimal.NewFromFloat(129.90),
			event.TypeUpdated, "admin@example.com", "req-1",
		)
		require.NoError(t, err)
		return ev
	}

	t.Run("record key layout and expiry", func(t *testing.T) {
		store := &captureAppender{}
		p := events.NewStorePublisher(store, clock.NewMockClock(now), cfg)

		ev := newEvent(t)
		require.NoError(t, p.Publish(context.Background(), ev))

		assert.Equal(t, "#product_KBD-001", store.rec.PK)
		assert.Equal(t, fmt.Sprintf("UPDATED#%d", now.UnixMilli()), store.rec.SK)
		assert.Equal(t, "UPDATED", store.rec.EventType)
		assert.Equal(t, ev.ProductID(), store.rec.ProductID)
		assert.Equal(t, "admin@example.com", store.rec.Email)
		assert.Equal(t, "req-1", store.rec.RequestID)
		assert.Equal(t, now, store.rec.CreatedAt)
		assert.Equal(t, now.Add(300*time.Second), store.rec.ExpiresAt)
	})

	t.Run("append failure propagates to the caller", func(t *testing.T) {
		store := &captureAppender{err: errors.New("event store unavailable")}
		p := events.NewStorePublisher(store, clock.NewMockClock(now), cfg)

		err := p.Publish(context.Background(), newEvent(t))
		assert.Error(t, err)
	})
}
