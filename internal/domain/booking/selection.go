package booking

import (
	"errors"
	"time"

	"turfbook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidHourIndex = errors.New("hour index out of range")
	ErrZeroDate         = errors.New("selection date is required")
	ErrNonPositiveRate  = errors.New("hourly rate must be positive")
)

// Selection is a finalized slot/duration choice. Immutable; a new
// selection is built whenever the user changes any input.
type Selection struct {
	turfID     uuid.UUID
	date       time.Time
	hourIndex  int
	duration   Duration
	hourlyRate Money
}

func NewSelection(turfID uuid.UUID, date time.Time, hourIndex int, duration Duration, hourlyRate Money) (Selection, error) {
	if date.IsZero() {
		return Selection{}, ErrZeroDate
	}
	if hourIndex < 1 || hourIndex > schedule.SlotCount {
		return Selection{}, ErrInvalidHourIndex
	}
	if !hourlyRate.IsPositive() {
		return Selection{}, ErrNonPositiveRate
	}
	if duration.HalfHours() == 0 {
		return Selection{}, ErrInvalidDuration
	}

	return Selection{
		turfID:     turfID,
		date:       date,
		hourIndex:  hourIndex,
		duration:   duration,
		hourlyRate: hourlyRate,
	}, nil
}

func (s Selection) TurfID() uuid.UUID  { return s.turfID }
func (s Selection) Date() time.Time    { return s.date }
func (s Selection) HourIndex() int     { return s.hourIndex }
func (s Selection) Duration() Duration { return s.duration }
func (s Selection) HourlyRate() Money  { return s.hourlyRate }

// SlotPrice is the undiscounted price for the selected duration.
func (s Selection) SlotPrice() Money {
	return s.duration.PriceFor(s.hourlyRate)
}

func (s Selection) StartLabel(openingHour int) string {
	return schedule.SlotLabel(openingHour, s.hourIndex)
}
