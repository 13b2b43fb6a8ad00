package components

import (
	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/checkout"
	"turfbook/internal/domain/schedule"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/config"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewScheduleQueries,
		queries.NewTurfQueries,
		queries.NewBookingQueries,
		queries.NewSquadQueries,
		NewBookingCommands,
		commands.NewSquadCommands,
	),
)

func NewScheduleQueries(provider schedule.AvailabilityProvider, clk clock.Clock, cfg config.Config) queries.ScheduleQueries {
	return queries.NewScheduleQueries(provider, clk, cfg.Schedule.WindowDays, cfg.Schedule.OpeningHour)
}

func NewBookingCommands(
	turfRepo commands.TurfRepository,
	couponRepo commands.CouponRepository,
	reservationRepo commands.ReservationRepository,
	squadStore commands.SquadStore,
	provider schedule.AvailabilityProvider,
	invalidator commands.AvailabilityInvalidator,
	gateway checkout.PaymentGateway,
	clk clock.Clock,
	cfg config.Config,
) commands.BookingCommands {
	policy := booking.NewPolicy(
		booking.NewMoney(cfg.Pricing.AdvanceAmount),
		booking.NewMoney(cfg.Pricing.ConvenienceFee),
	)
	return commands.NewBookingCommands(
		turfRepo,
		couponRepo,
		reservationRepo,
		squadStore,
		provider,
		invalidator,
		gateway,
		policy,
		booking.NewMoney(cfg.Pricing.DefaultHourlyRate),
		clk,
	)
}
