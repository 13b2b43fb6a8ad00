package components

import (
	"turfbook/internal/domain/checkout"
	"turfbook/internal/domain/schedule"
	"turfbook/internal/infra/availability"
	"turfbook/internal/infra/matchmaking"
	"turfbook/internal/infra/payment"
	"turfbook/internal/infra/readstore"
	"turfbook/internal/infra/repository"
	"turfbook/internal/infra/session"
	"turfbook/internal/pkg/config"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			repository.NewTurfRepository,
			fx.As(new(commands.TurfRepository)),
		),
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewTurfReadStore,
			fx.As(new(queries.TurfReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Squads live in process memory, one store serves both sides
		fx.Annotate(
			session.NewSquadStore,
			fx.As(new(commands.SquadStore)),
			fx.As(new(queries.SquadReader)),
		),
		fx.Annotate(
			NewAvailabilityProvider,
			fx.As(new(schedule.AvailabilityProvider)),
			fx.As(new(commands.AvailabilityInvalidator)),
		),
		fx.Annotate(
			payment.NewSandboxGateway,
			fx.As(new(checkout.PaymentGateway)),
		),
		fx.Annotate(
			matchmaking.NewLogNotifier,
			fx.As(new(commands.MatchmakingNotifier)),
		),
	),
)

func NewAvailabilityProvider(pool *pgxpool.Pool, client *redis.Client, cfg config.Config) *availability.CachedProvider {
	return availability.NewCachedProvider(
		availability.NewPostgresProvider(pool),
		client,
		cfg.Redis.AvailabilityTTL,
	)
}
