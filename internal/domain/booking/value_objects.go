package booking

import "errors"

var (
	ErrNegativeAmount  = errors.New("amount cannot be negative")
	ErrInvalidDuration = errors.New("duration must be a half-hour step between 0.5 and 5 hours")
)

// Money is an amount in paise.
type Money struct {
	paise int64
}

func NewMoney(paise int64) Money {
	return Money{paise: paise}
}

func NewMoneyFromPaise(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{paise: paise}, nil
}

func (m Money) Paise() int64 {
	return m.paise
}

func (m Money) Rupees() float64 {
	return float64(m.paise) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{paise: m.paise + other.paise}
}

// SubFloor subtracts, clamping at zero. Payable amounts never go negative.
func (m Money) SubFloor(other Money) Money {
	remaining := m.paise - other.paise
	if remaining < 0 {
		remaining = 0
	}
	return Money{paise: remaining}
}

func (m Money) IsZero() bool {
	return m.paise == 0
}

func (m Money) IsPositive() bool {
	return m.paise > 0
}

// Duration is a booking length in half-hour steps within [0.5h, 5h].
type Duration struct {
	halfHours int
}

const (
	minHalfHours = 1
	maxHalfHours = 10
)

func MinDuration() Duration { return Duration{halfHours: minHalfHours} }
func MaxDuration() Duration { return Duration{halfHours: maxHalfHours} }

func NewDuration(hours float64) (Duration, error) {
	doubled := hours * 2
	halfHours := int(doubled)
	if float64(halfHours) != doubled {
		return Duration{}, ErrInvalidDuration
	}
	return DurationFromHalfHours(halfHours)
}

func DurationFromHalfHours(halfHours int) (Duration, error) {
	if halfHours < minHalfHours || halfHours > maxHalfHours {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{halfHours: halfHours}, nil
}

func (d Duration) Hours() float64 {
	return float64(d.halfHours) / 2.0
}

func (d Duration) HalfHours() int {
	return d.halfHours
}

// Increment steps up by half an hour, clamping at the maximum.
func (d Duration) Increment() Duration {
	if d.halfHours >= maxHalfHours {
		return d
	}
	return Duration{halfHours: d.halfHours + 1}
}

// Decrement steps down by half an hour, clamping at the minimum.
func (d Duration) Decrement() Duration {
	if d.halfHours <= minHalfHours {
		return d
	}
	return Duration{halfHours: d.halfHours - 1}
}

// PriceFor multiplies an hourly rate by this duration.
func (d Duration) PriceFor(hourlyRate Money) Money {
	return Money{paise: hourlyRate.paise * int64(d.halfHours) / 2}
}
