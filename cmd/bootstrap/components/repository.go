package components

import (
	"ecommerce-api/internal/infra/events"
	repo_impl "ecommerce-api/internal/infra/repository"
	"ecommerce-api/internal/infra/worker"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Product table backs both the write side and the read side
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			repo_impl.NewEventRepository,
			fx.As(new(events.Appender)),
			fx.As(new(worker.ExpiredDeleter)),
		),
		fx.Annotate(
			events.NewStorePublisher,
			fx.As(new(commands.ProductEventPublisher)),
		),
	),
)
