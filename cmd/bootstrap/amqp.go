package bootstrap

import (
	"context"
	"log/slog"

	"stelwing-booking/internal/infra/messaging"
	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/worker"

	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) worker.Publisher {
	if !cfg.AMQP.Enabled {
		slog.Info("amqp disabled, outbox events are logged only")
		return messaging.LogPublisher{}
	}

	pub := messaging.NewRabbitPublisher(cfg.AMQP)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
