//go:build unit

package product_test

import (
	"strings"
	"testing"

	"ecommerce-api/internal/domain/product"
	"ecommerce-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ProductBuilder)
	errIs  error
}

func TestNewProduct(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, uuid.Nil, actual.ID(), "id is assigned by the store, not the constructor")
		assert.Equal(t, "Gaming Keyboard", actual.Name())
		assert.Equal(t, "KBD-001", actual.Code())
		assert.True(t, decimal.NewFromFloat(129.90).Equal(actual.Price()))
		assert.Equal(t, "RGB-87", actual.Model())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		actual, err := builder.NewProductBuilder().
			WithName("  Gaming Keyboard  ").
			WithCode("  KBD-001  ").
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Gaming Keyboard", actual.Name())
		assert.Equal(t, "KBD-001", actual.Code())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ProductBuilder) { b.Name = "" },
				errIs:  product.ErrEmptyProductName,
			},
			{
				name:   "whitespace-only name",
				mutate: func(b *builder.ProductBuilder) { b.Name = "   " },
				errIs:  product.ErrEmptyProductName,
			},
			{
				name:   "maximum length name",
				mutate: func(b *builder.ProductBuilder) { b.Name = strings.Repeat("a", product.MaxProductNameLength) },
			},
			{
				name:   "name too long",
				mutate: func(b *builder.ProductBuilder) { b.Name = strings.Repeat("a", product.MaxProductNameLength+1) },
				errIs:  product.ErrProductNameTooLong,
			},
		})
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty code",
				mutate: func(b *builder.ProductBuilder) { b.Code = "" },
				errIs:  product.ErrEmptyProductCode,
			},
			{
				name:   "whitespace-only code",
				mutate: func(b *builder.ProductBuilder) { b.Code = "   " },
				errIs:  product.ErrEmptyProductCode,
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price is valid",
				mutate: func(b *builder.ProductBuilder) { b.Price = decimal.Zero },
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ProductBuilder) { b.Price = decimal.NewFromInt(-1) },
				errIs:  product.ErrNegativePrice,
			},
		})
	})

	t.Run("empty model is valid", func(t *testing.T) {
		actual, err := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.Model = "" }).BuildDomain()
		require.NoError(t, err)
		assert.Empty(t, actual.Model())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewProductBuilder()
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
