package components

import (
	"context"

	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cfg config.Config) config.AMQPConfig { return cfg.AMQP },
		worker.NewOutboxRelay,
	),
	fx.Invoke(startOutboxRelay),
)

func startOutboxRelay(lc fx.Lifecycle, relay *worker.OutboxRelay) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: relay.Stop,
	})
}
