//go:build unit

package event_test

import (
	"testing"

	"ecommerce-api/internal/domain/event"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductEvent(t *testing.T) {
	id := uuid.New()
	price := decimal.NewFromFloat(129.90)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := event.NewProductEvent(id, "KBD-001", price, event.TypeCreated, "admin@example.com", "req-1")
		require.NoError(t, err)

		assert.Equal(t, id, actual.ProductID())
		assert.Equal(t, "KBD-001", actual.ProductCode())
		assert.True(t, price.Equal(actual.ProductPrice()))
		assert.Equal(t, event.TypeCreated, actual.EventType())
		assert.Equal(t, "admin@example.com", actual.Email())
		assert.Equal(t, "req-1", actual.RequestID())
	})

	t.Run("anonymous origin is allowed", func(t *testing.T) {
		actual, err := event.NewProductEvent(id, "KBD-001", price, event.TypeDeleted, "", "")
		require.NoError(t, err)
		assert.Empty(t, actual.Email())
	})

	t.Run("empty product code", func(t *testing.T) {
		_, err := event.NewProductEvent(id, "", price, event.TypeCreated, "", "")
		assert.ErrorIs(t, err, event.ErrEmptyProductCode)
	})

	t.Run("invalid event type", func(t *testing.T) {
		_, err := event.NewProductEvent(id, "KBD-001", price, event.Type("ARCHIVED"), "", "")
		assert.ErrorIs(t, err, event.ErrInvalidEventType)
	})
}

func TestTypeValid(t *testing.T) {
	assert.True(t, event.TypeCreated.Valid())
	assert.True(t, event.TypeUpdated.Valid())
	assert.True(t, event.TypeDeleted.Valid())
	assert.False(t, event.Type("").Valid())
	assert.False(t, event.Type("created").Valid())
}
