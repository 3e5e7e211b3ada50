package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"stelwing-booking/internal/infra/cache"
	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewSeatMapCache,
	),
)

// NewSeatMapCache falls back to a no-op cache when Redis is disabled.
func NewSeatMapCache(lc fx.Lifecycle, cfg config.Config) (queries.SeatMapCache, error) {
	if !cfg.Redis.Enabled {
		slog.Info("redis disabled, seat maps are read from the database")
		return cache.NopSeatMap{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("redis connected", "addr", cfg.Redis.Addr, "seat_map_ttl", cfg.Redis.SeatMapTTL)
	return cache.NewRedisSeatMap(client, cfg.Redis.SeatMapTTL), nil
}
