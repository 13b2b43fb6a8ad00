package components

import (
	"turfbook/internal/handler"
	"turfbook/internal/handler/api"
	"turfbook/internal/handler/middleware"
	"turfbook/internal/pkg/config"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTurfHandler,
		api.NewScheduleHandler,
		NewBookingHandler,
		api.NewSquadHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries, cfg config.Config) *api.BookingHandler {
	return api.NewBookingHandler(bookingCommands, bookingQueries, cfg.Schedule.OpeningHour)
}
