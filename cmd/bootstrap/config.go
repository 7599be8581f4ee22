package bootstrap

import (
	"ecommerce-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.DBConfig { return cfg.DB },
		func(cfg config.Config) config.TablesConfig { return cfg.Tables },
		func(cfg config.Config) config.EventsConfig { return cfg.Events },
	),
)
