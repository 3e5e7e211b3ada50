package bootstrap

import (
	"context"
	"log/slog"

	"stelwing-booking/internal/infra/db"
	"stelwing-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RegisterPoolMetrics),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			slog.Info("closing database pool")
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func RegisterPoolMetrics(reg prometheus.Registerer, pool *pgxpool.Pool) error {
	return reg.Register(db.NewPoolCollector(pool))
}
