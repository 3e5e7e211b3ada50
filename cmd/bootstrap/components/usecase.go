package components

import (
	"stelwing-booking/internal/domain/booking"
	"stelwing-booking/internal/pkg/clock"
	"stelwing-booking/internal/pkg/config"
	"stelwing-booking/internal/usecase"
	"stelwing-booking/internal/usecase/commands"
	"stelwing-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewRandomLocatorGenerator,
		fx.As(new(booking.LocatorGenerator)),
	),
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewOptionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
