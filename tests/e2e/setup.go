//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"stelwing-booking/cmd/bootstrap"
	"stelwing-booking/cmd/bootstrap/components"
	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// startApp wires the production modules around the test pool. The outbox
// relay is left out so tests can inspect queued jobs.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.RedisModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})
	return router
}

// SharedSuite boots Postgres (and Redis when UseRedis is set) plus the HTTP
// app once per suite, and resets the database before every subtest.
type SharedSuite struct {
	suite.Suite
	UseRedis bool

	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *goredis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbCfg := createDatabase(t, postgresEndpoint(t))

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	if s.UseRedis {
		cfg.Redis.Enabled = true
		cfg.Redis.Addr = redisEndpoint(t).Addr()
		cfg.Redis.SeatMapTTL = time.Minute
		s.Redis = goredis.NewClient(&goredis.Options{Addr: cfg.Redis.Addr})
		t.Cleanup(func() { _ = s.Redis.Close() })
	}

	s.DB = pool
	s.Config = cfg
	s.Router = startApp(t, pool, cfg)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
	if s.Redis != nil {
		require.NoError(s.T(), s.Redis.FlushDB(context.Background()).Err(), "failed to flush redis")
	}
}
