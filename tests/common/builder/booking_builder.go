//go:build unit

package builder

import (
	"time"

	"turfbook/internal/domain/booking"
	reqdto "turfbook/internal/handler/dto/request"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	TurfID          uuid.UUID
	TurfName        string
	Date            string
	HourIndex       int
	DurationHours   float64
	Method          string
	CouponCode      *string
	SquadID         *uuid.UUID
	HourlyRatePaise int64
	AdvancePaise    int64
	FeePaise        int64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		TurfID:          uuid.New(),
		TurfName:        "Greenfield Arena",
		Date:            "2026-09-12",
		HourIndex:       3,
		DurationHours:   2,
		Method:          "advance",
		HourlyRatePaise: 40000,
		AdvancePaise:    10000,
		FeePaise:        2000,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		TurfID:        b.TurfID,
		Date:          b.Date,
		HourIndex:     b.HourIndex,
		DurationHours: b.DurationHours,
		Method:        b.Method,
		CouponCode:    b.CouponCode,
	}
}

func (b *BookingBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		QuoteRequest: b.BuildQuoteRequestDTO(),
		SquadID:      b.SquadID,
	}
}

func (b *BookingBuilder) BuildSelection() (booking.Selection, error) {
	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		return booking.Selection{}, err
	}
	duration, err := booking.NewDuration(b.DurationHours)
	if err != nil {
		return booking.Selection{}, err
	}
	return booking.NewSelection(b.TurfID, date, b.HourIndex, duration, booking.NewMoney(b.HourlyRatePaise))
}

func (b *BookingBuilder) BuildQuoteResult() (*commands.QuoteResult, error) {
	sel, err := b.BuildSelection()
	if err != nil {
		return nil, err
	}
	policy := booking.NewPolicy(booking.NewMoney(b.AdvancePaise), booking.NewMoney(b.FeePaise))
	breakdown, err := policy.Quote(sel, booking.PaymentMethod(b.Method), booking.NewMoney(0))
	if err != nil {
		return nil, err
	}
	return &commands.QuoteResult{
		TurfName:  b.TurfName,
		Selection: sel,
		Breakdown: breakdown,
	}, nil
}

func (b *BookingBuilder) BuildView() queries.BookingView {
	return queries.BookingView{
		ID:             uuid.New(),
		TurfID:         b.TurfID,
		TurfName:       b.TurfName,
		SlotDate:       b.Date,
		StartHour:      b.HourIndex,
		DurationHours:  b.DurationHours,
		Method:         b.Method,
		SlotPricePaise: int64(b.DurationHours * float64(b.HourlyRatePaise)),
		PaidPaise:      b.AdvancePaise + b.FeePaise,
		Status:         "confirmed",
		CreatedAt:      time.Now(),
	}
}
