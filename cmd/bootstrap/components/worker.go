package components

import (
	"context"

	"ecommerce-api/internal/infra/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewReaper,
	),
	fx.Invoke(runReaper),
)

func runReaper(lc fx.Lifecycle, r *worker.Reaper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			r.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			r.Stop()
			return nil
		},
	})
}
