//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"ecommerce-api/internal/domain/event"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/tests/common/builder"
	commandsmock "ecommerce-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRepo      *commandsmock.MockProductRepository
	mockPublisher *commandsmock.MockProductEventPublisher
	cmds          commands.ProductCommands
}

func (s *ProductCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockProductRepository(s.mockCtrl)
	s.mockPublisher = commandsmock.NewMockProductEventPublisher(s.mockCtrl)
	s.cmds = commands.NewProductCommands(s.mockRepo, s.mockPublisher)
}

func (s *ProductCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductCommandsSuite(t *testing.T) {
	suite.Run(t, new(ProductCommandsTestSuite))
}

var origin = commands.Origin{Email: "admin@example.com", RequestID: "req-1"}

func (s *ProductCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("success: persists and publishes a CREATED event", func() {
		b := builder.NewProductBuilder()
		stored := b.BuildStored()

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, nil)

		var published *event.ProductEvent
		s.mockPublisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev *event.ProductEvent) error {
				published = ev
				return nil
			})

		actual, err := s.cmds.Create(ctx, b.BuildInput(), origin)
		s.Require().NoError(err)
		s.Equal(stored, actual)

		s.Require().NotNil(published)
		s.Equal(event.TypeCreated, published.EventType())
		s.Equal(stored.ID(), published.ProductID())
		s.Equal(stored.Code(), published.ProductCode())
		s.Equal("admin@example.com", published.Email())
		s.Equal("req-1", published.RequestID())
	})

	s.Run("publish failure does not fail the mutation", func() {
		b := builder.NewProductBuilder()
		stored := b.BuildStored()

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, nil)
		s.mockPublisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			Return(errors.New("event store unavailable"))

		actual, err := s.cmds.Create(ctx, b.BuildInput(), origin)
		s.Require().NoError(err)
		s.Equal(stored, actual)
	})

	s.Run("invalid input is rejected before any store call", func() {
		input := builder.NewProductBuilder().BuildInput()
		input.Name = ""

		actual, err := s.cmds.Create(ctx, input, origin)
		s.ErrorIs(err, commands.ErrDomainValidation)
		s.Nil(actual)
	})

	s.Run("store failure surfaces as database error, no event published", func() {
		s.mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert failed", errors.New("connection reset")))

		actual, err := s.cmds.Create(ctx, builder.NewProductBuilder().BuildInput(), origin)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
		s.Nil(actual)
	})
}

func (s *ProductCommandsTestSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("success: publishes an UPDATED event", func() {
		b := builder.NewProductBuilder()
		stored := b.BuildStored()

		s.mockRepo.EXPECT().Update(gomock.Any(), b.ID, gomock.Any()).Return(stored, nil)

		var published *event.ProductEvent
		s.mockPublisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev *event.ProductEvent) error {
				published = ev
				return nil
			})

		actual, err := s.cmds.Update(ctx, b.ID, b.BuildInput(), origin)
		s.Require().NoError(err)
		s.Equal(stored, actual)
		s.Equal(event.TypeUpdated, published.EventType())
	})

	s.Run("missing product maps to not-found, no event published", func() {
		id := uuid.New()

		s.mockRepo.EXPECT().
			Update(gomock.Any(), id, gomock.Any()).
			Return(nil, infra.WrapRepoErr("product not found", errors.New("no rows"), infra.KindNotFound))

		actual, err := s.cmds.Update(ctx, id, builder.NewProductBuilder().BuildInput(), origin)
		s.ErrorIs(err, commands.ErrProductNotFound)
		s.Nil(actual)
	})
}

func (s *ProductCommandsTestSuite) TestDelete() {
	ctx := context.Background()

	s.Run("success: returns prior value and publishes a DELETED event", func() {
		b := builder.NewProductBuilder()
		stored := b.BuildStored()

		s.mockRepo.EXPECT().Delete(gomock.Any(), b.ID).Return(stored, nil)

		var published *event.ProductEvent
		s.mockPublisher.EXPECT().
			Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev *event.ProductEvent) error {
				published = ev
				return nil
			})

		actual, err := s.cmds.Delete(ctx, b.ID, origin)
		s.Require().NoError(err)
		s.Equal(stored, actual)
		s.Equal(event.TypeDeleted, published.EventType())
	})

	s.Run("missing product maps to not-found, no event published", func() {
		id := uuid.New()

		s.mockRepo.EXPECT().
			Delete(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("product not found", errors.New("no rows"), infra.KindNotFound))

		actual, err := s.cmds.Delete(ctx, id, origin)
		s.ErrorIs(err, commands.ErrProductNotFound)
		s.Nil(actual)
	})
}
