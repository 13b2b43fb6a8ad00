package request

import (
	"strings"
	"time"

	"turfbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	TurfID        uuid.UUID `json:"turf_id" binding:"required"`
	Date          string    `json:"date" binding:"required,datetime=2006-01-02"`
	HourIndex     int       `json:"hour_index" binding:"required,min=1,max=12"`
	DurationHours float64   `json:"duration_hours" binding:"required"`
	Method        string    `json:"method" binding:"required,oneof=advance full"`
	CouponCode    *string   `json:"coupon_code,omitempty"`
}

func (r QuoteRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r QuoteRequest) ToParams() (commands.QuoteParams, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return commands.QuoteParams{}, err
	}

	return commands.QuoteParams{
		TurfID:        r.TurfID,
		Date:          date,
		HourIndex:     r.HourIndex,
		DurationHours: r.DurationHours,
		Method:        r.Method,
		CouponCode:    r.GetCouponCode(),
	}, nil
}

type CheckoutRequest struct {
	QuoteRequest
	SquadID *uuid.UUID `json:"squad_id,omitempty"`
}

func (r CheckoutRequest) ToParams() (commands.CheckoutParams, error) {
	quoteParams, err := r.QuoteRequest.ToParams()
	if err != nil {
		return commands.CheckoutParams{}, err
	}
	return commands.CheckoutParams{
		QuoteParams: quoteParams,
		SquadID:     r.SquadID,
	}, nil
}
