package components

import (
	"ecommerce-api/internal/handler"
	"ecommerce-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewOrderHandler,
	),
	fx.Invoke(handler.NewRouter),
)
