//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/tests/common/builder"
	commandsmock "ecommerce-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockOrderRepo   *commandsmock.MockOrderRepository
	mockProductRepo *commandsmock.MockProductRepository
	cmds            commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrderRepo = commandsmock.NewMockOrderRepository(s.mockCtrl)
	s.mockProductRepo = commandsmock.NewMockProductRepository(s.mockCtrl)
	s.cmds = commands.NewOrderCommands(s.mockOrderRepo, s.mockProductRepo)
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func snapshotMap(snaps ...order.ProductSnapshot) map[uuid.UUID]order.ProductSnapshot {
	m := make(map[uuid.UUID]order.ProductSnapshot, len(snaps))
	for _, s := range snaps {
		m[s.ID] = s
	}
	return m
}

func (s *OrderCommandsTestSuite) TestPlaceOrder() {
	ctx := context.Background()

	s.Run("success: resolves every product and persists the order", func() {
		b := builder.NewOrderBuilder()
		input := b.BuildInput()

		s.mockProductRepo.EXPECT().
			FindByIDs(gomock.Any(), input.ProductIDs).
			Return(snapshotMap(b.Snapshots...), nil)

		var persisted *order.Order
		s.mockOrderRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *order.Order) (*order.Order, error) {
				persisted = o
				return o, nil
			})

		actual, err := s.cmds.PlaceOrder(ctx, input)
		s.Require().NoError(err)
		s.Require().NotNil(actual)

		s.Require().NotNil(persisted)
		s.Len(persisted.Products(), 2)
		s.True(decimal.NewFromFloat(179.80).Equal(persisted.Billing().TotalPrice))
	})

	s.Run("all-or-nothing: one unresolved id fails the whole request", func() {
		known := order.ProductSnapshot{ID: uuid.New(), Code: "KBD-001", Price: decimal.NewFromInt(10)}
		unknown := uuid.New()

		input := builder.NewOrderBuilder().WithSnapshots(known).BuildInput()
		input.ProductIDs = append(input.ProductIDs, unknown)

		// Only the known id resolves; Create must never run
		s.mockProductRepo.EXPECT().
			FindByIDs(gomock.Any(), input.ProductIDs).
			Return(snapshotMap(known), nil)

		actual, err := s.cmds.PlaceOrder(ctx, input)
		s.ErrorIs(err, commands.ErrProductsNotFound)
		s.Nil(actual)
	})

	s.Run("duplicate ids resolve independently into repeated line items", func() {
		snap := order.ProductSnapshot{ID: uuid.New(), Code: "KBD-001", Price: decimal.NewFromInt(10)}
		input := builder.NewOrderBuilder().WithSnapshots(snap).BuildInput()
		input.ProductIDs = []uuid.UUID{snap.ID, snap.ID, snap.ID}

		s.mockProductRepo.EXPECT().
			FindByIDs(gomock.Any(), input.ProductIDs).
			Return(snapshotMap(snap), nil)

		var persisted *order.Order
		s.mockOrderRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *order.Order) (*order.Order, error) {
				persisted = o
				return o, nil
			})

		_, err := s.cmds.PlaceOrder(ctx, input)
		s.Require().NoError(err)
		s.Require().NotNil(persisted)
		s.Len(persisted.Products(), 3)
		s.True(decimal.NewFromInt(30).Equal(persisted.Billing().TotalPrice))
	})

	s.Run("empty product list is a validation failure", func() {
		input := builder.NewOrderBuilder().BuildInput()
		input.ProductIDs = nil

		actual, err := s.cmds.PlaceOrder(ctx, input)
		s.ErrorIs(err, commands.ErrDomainValidation)
		s.Nil(actual)
	})

	s.Run("lookup failure surfaces as database error", func() {
		input := builder.NewOrderBuilder().BuildInput()

		s.mockProductRepo.EXPECT().
			FindByIDs(gomock.Any(), input.ProductIDs).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset")))

		actual, err := s.cmds.PlaceOrder(ctx, input)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
		s.Nil(actual)
	})

	s.Run("persistence failure surfaces as database error", func() {
		b := builder.NewOrderBuilder()
		input := b.BuildInput()

		s.mockProductRepo.EXPECT().
			FindByIDs(gomock.Any(), input.ProductIDs).
			Return(snapshotMap(b.Snapshots...), nil)
		s.mockOrderRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert failed", errors.New("connection reset")))

		actual, err := s.cmds.PlaceOrder(ctx, input)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
		s.Nil(actual)
	})
}

func (s *OrderCommandsTestSuite) TestDeleteOrder() {
	ctx := context.Background()

	s.Run("success: returns the removed order", func() {
		stored := builder.NewOrderBuilder().BuildStored()

		s.mockOrderRepo.EXPECT().
			Delete(gomock.Any(), stored.CustomerEmail(), stored.ID()).
			Return(stored, nil)

		actual, err := s.cmds.DeleteOrder(ctx, stored.CustomerEmail(), stored.ID())
		s.Require().NoError(err)
		s.Equal(stored, actual)
	})

	s.Run("missing order maps to not-found", func() {
		orderID := uuid.New()

		s.mockOrderRepo.EXPECT().
			Delete(gomock.Any(), "nobody@example.com", orderID).
			Return(nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound))

		actual, err := s.cmds.DeleteOrder(ctx, "nobody@example.com", orderID)
		s.ErrorIs(err, commands.ErrOrderNotFound)
		s.Nil(actual)
	})
}
