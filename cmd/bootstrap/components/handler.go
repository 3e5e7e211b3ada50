package components

import (
	"stelwing-booking/internal/handler"
	"stelwing-booking/internal/handler/api"
	"stelwing-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewOptionsHandler,
		middleware.NewAuthMiddleware,
		func(b *api.BookingHandler, o *api.OptionsHandler, auth *middleware.AuthMiddleware) handler.Handlers {
			return handler.Handlers{Booking: b, Options: o, Auth: auth}
		},
	),
	fx.Invoke(handler.NewRouter),
)
