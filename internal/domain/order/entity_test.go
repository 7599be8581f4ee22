//go:build unit

package order_test

import (
	"testing"

	"ecommerce-api/internal/domain/order"
	"ecommerce-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.OrderBuilder)
	errIs  error
}

func TestBuildOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "customer@example.com", actual.CustomerEmail())
		assert.Equal(t, uuid.Nil, actual.ID(), "id is assigned by the store, not the constructor")
		assert.True(t, actual.CreatedAt().IsZero(), "createdAt is assigned by the store")
		assert.Len(t, actual.Products(), 2)
		assert.True(t, decimal.NewFromFloat(179.80).Equal(actual.Billing().TotalPrice))
	})

	t.Run("total is the exact sum of snapshot prices", func(t *testing.T) {
		snaps := []order.ProductSnapshot{
			{ID: uuid.New(), Code: "A", Price: decimal.NewFromInt(10)},
			{ID: uuid.New(), Code: "B", Price: decimal.NewFromInt(20)},
		}
		actual, err := builder.NewOrderBuilder().WithSnapshots(snaps...).BuildDomain()
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(30).Equal(actual.Billing().TotalPrice))
	})

	t.Run("duplicate snapshots become repeated line items and each counts toward the total", func(t *testing.T) {
		id := uuid.New()
		snap := order.ProductSnapshot{ID: id, Code: "KBD-001", Price: decimal.NewFromFloat(129.90)}
		actual, err := builder.NewOrderBuilder().WithSnapshots(snap, snap, snap).BuildDomain()
		require.NoError(t, err)

		require.Len(t, actual.Products(), 3)
		for _, item := range actual.Products() {
			assert.Equal(t, "KBD-001", item.Code)
		}
		assert.True(t, decimal.NewFromFloat(389.70).Equal(actual.Billing().TotalPrice))
	})

	t.Run("line items preserve snapshot order", func(t *testing.T) {
		snaps := []order.ProductSnapshot{
			{ID: uuid.New(), Code: "C", Price: decimal.NewFromInt(3)},
			{ID: uuid.New(), Code: "A", Price: decimal.NewFromInt(1)},
			{ID: uuid.New(), Code: "B", Price: decimal.NewFromInt(2)},
		}
		actual, err := builder.NewOrderBuilder().WithSnapshots(snaps...).BuildDomain()
		require.NoError(t, err)

		codes := make([]string, 0, len(actual.Products()))
		for _, item := range actual.Products() {
			codes = append(codes, item.Code)
		}
		assert.Equal(t, []string{"C", "A", "B"}, codes)
	})

	t.Run("no float drift on many decimal additions", func(t *testing.T) {
		snap := order.ProductSnapshot{ID: uuid.New(), Code: "P", Price: decimal.NewFromFloat(0.10)}
		snaps := make([]order.ProductSnapshot, 0, 100)
		for range 100 {
			snaps = append(snaps, snap)
		}
		actual, err := builder.NewOrderBuilder().WithSnapshots(snaps...).BuildDomain()
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(10).Equal(actual.Billing().TotalPrice))
	})

	t.Run("input validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty email",
				mutate: func(b *builder.OrderBuilder) { b.Email = "" },
				errIs:  order.ErrEmptyCustomerEmail,
			},
			{
				name:   "whitespace-only email",
				mutate: func(b *builder.OrderBuilder) { b.Email = "   " },
				errIs:  order.ErrEmptyCustomerEmail,
			},
			{
				name:   "no products",
				mutate: func(b *builder.OrderBuilder) { b.Snapshots = nil },
				errIs:  order.ErrNoProducts,
			},
			{
				name:   "invalid payment type",
				mutate: func(b *builder.OrderBuilder) { b.Payment = "BARTER" },
				errIs:  order.ErrInvalidPaymentType,
			},
			{
				name:   "invalid shipping type",
				mutate: func(b *builder.OrderBuilder) { b.Shipping.Type = "TELEPORT" },
				errIs:  order.ErrInvalidShippingType,
			},
			{
				name:   "invalid carrier",
				mutate: func(b *builder.OrderBuilder) { b.Shipping.Carrier = "PIGEON" },
				errIs:  order.ErrInvalidCarrier,
			},
			{
				name: "negative snapshot price",
				mutate: func(b *builder.OrderBuilder) {
					b.Snapshots = []order.ProductSnapshot{
						{ID: uuid.New(), Code: "X", Price: decimal.NewFromInt(-5)},
					}
				},
				errIs: order.ErrNegativePrice,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewOrderBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
