package turf

import (
	"errors"
	"strings"

	"turfbook/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyTurfName   = errors.New("turf name cannot be empty")
	ErrTurfNameTooLong = errors.New("turf name is too long (max 255 characters)")
)

const MaxTurfNameLength = 255

type Turf struct {
	id         uuid.UUID
	name       string
	sport      string
	area       string
	hourlyRate booking.Money
}

func NewTurf(id uuid.UUID, name, sport, area string, hourlyRate booking.Money) (*Turf, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTurfName
	}
	if len(name) > MaxTurfNameLength {
		return nil, ErrTurfNameTooLong
	}

	return &Turf{
		id:         id,
		name:       name,
		sport:      sport,
		area:       area,
		hourlyRate: hourlyRate,
	}, nil
}

// RateOrDefault substitutes a configured fallback rate when the catalog
// has no price for the turf.
func (t *Turf) RateOrDefault(fallback booking.Money) booking.Money {
	if t.hourlyRate.IsPositive() {
		return t.hourlyRate
	}
	return fallback
}

func (t *Turf) ID() uuid.UUID             { return t.id }
func (t *Turf) Name() string              { return t.name }
func (t *Turf) Sport() string             { return t.sport }
func (t *Turf) Area() string              { return t.area }
func (t *Turf) HourlyRate() booking.Money { return t.hourlyRate }
