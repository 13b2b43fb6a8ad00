package commands

import (
	"context"
	"time"

	"turfbook/internal/domain/squad"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer off the read-side query types
type TurfSnapshot struct {
	ID              uuid.UUID
	Name            string
	Sport           string
	Area            string
	HourlyRatePaise int64
}

type CouponSnapshot struct {
	ID             uuid.UUID
	Code           string
	AmountOffPaise *int64
	PercentOff     *float64
	ValidFrom      *time.Time
	ValidTo        *time.Time
}

// ReservationRecord is the row written for a confirmed checkout.
type ReservationRecord struct {
	ID             uuid.UUID
	TurfID         uuid.UUID
	UserID         uuid.UUID
	SlotDate       time.Time
	StartHour      int
	HalfHours      int
	Method         string
	SlotPricePaise int64
	PaidPaise      int64
	Status         string
}

type TurfRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TurfSnapshot, error)
}

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, rec ReservationRecord) error
}

// SquadStore keeps in-flight rosters. Squads are session state, discarded
// with the session, so this is not a durable repository.
type SquadStore interface {
	Save(ctx context.Context, sq *squad.Squad) error
	Find(ctx context.Context, id uuid.UUID) (*squad.Squad, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MatchmakingNotifier hands an open roster off to the external
// matchmaking collaborator.
type MatchmakingNotifier interface {
	RequestPlayers(ctx context.Context, req squad.MatchmakingRequest) error
}

// AvailabilityInvalidator drops cached availability for a turf/date after
// a confirmed checkout changes the booked set.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, turfID uuid.UUID, date time.Time) error
}
