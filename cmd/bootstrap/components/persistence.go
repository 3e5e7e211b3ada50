package components

import (
	"stelwing-booking/internal/infra/readstore"
	sqlc "stelwing-booking/internal/infra/sqlc/generated"
	"stelwing-booking/internal/infra/uow"
	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/usecase/queries"
	"stelwing-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking views
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewStore)),
		),
		// Catalog: flights, seats, meals, baggage
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogQueries)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.OptionStore)),
		),
	),
)

// The unit of work builds its own repositories per transaction.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		func(cfg config.Config) config.DBConfig { return cfg.DB },
		uow.NewPostgresUoW,
		func(u shared.UnitOfWork) queries.ReadOnlyRunner { return u },
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
