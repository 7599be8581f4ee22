//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/usecase/queries"
	"ecommerce-api/tests/common/builder"
	queriesmock "ecommerce-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("List passes views through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)
		q := queries.NewProductQueries(store)

		views := []*queries.ProductView{builder.NewProductBuilder().BuildView()}
		store.EXPECT().FindAll(gomock.Any()).Return(views, nil)

		actual, err := q.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, views, actual)
	})

	t.Run("GetByID maps store not-found to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)
		q := queries.NewProductQueries(store)

		id := uuid.New()
		store.EXPECT().
			FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("product not found", errors.New("no rows"), infra.KindNotFound))

		actual, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, queries.ErrProductNotFound)
		assert.Nil(t, actual)
	})

	t.Run("GetByID passes other store errors through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockProductReadStore(ctrl)
		q := queries.NewProductQueries(store)

		id := uuid.New()
		storeErr := infra.WrapRepoErr("query failed", errors.New("connection reset"))
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, storeErr)

		_, err := q.GetByID(ctx, id)
		assert.NotErrorIs(t, err, queries.ErrProductNotFound)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOrderQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("ListByEmail passes views through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		q := queries.NewOrderQueries(store)

		views := []*queries.OrderView{builder.NewOrderBuilder().BuildView()}
		store.EXPECT().FindByEmail(gomock.Any(), "customer@example.com").Return(views, nil)

		actual, err := q.ListByEmail(ctx, "customer@example.com")
		require.NoError(t, err)
		assert.Equal(t, views, actual)
	})

	t.Run("GetOne maps store not-found to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		q := queries.NewOrderQueries(store)

		orderID := uuid.New()
		store.EXPECT().
			FindOne(gomock.Any(), "nobody@example.com", orderID).
			Return(nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound))

		actual, err := q.GetOne(ctx, "nobody@example.com", orderID)
		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
		assert.Nil(t, actual)
	})
}
