package response

import (
	"time"

	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BreakdownResponse struct {
	SlotPricePaise      int64  `json:"slotPricePaise"`
	DiscountPaise       int64  `json:"discountPaise"`
	Method              string `json:"method"`
	AdvancePaise        int64  `json:"advancePaise"`
	PayableAtVenuePaise int64  `json:"payableAtVenuePaise"`
	ConvenienceFeePaise int64  `json:"convenienceFeePaise"`
	PayablePaise        int64  `json:"payablePaise"`
}

type QuoteResponse struct {
	TurfName      string            `json:"turfName"`
	Date          string            `json:"date"`
	StartLabel    string            `json:"startLabel"`
	DurationHours float64           `json:"durationHours"`
	Breakdown     BreakdownResponse `json:"breakdown"`
}

type CheckoutResponse struct {
	BookingID uuid.UUID     `json:"bookingId"`
	Outcome   string        `json:"outcome"`
	Summary   QuoteResponse `json:"summary"`
}

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	TurfID         uuid.UUID `json:"turfId"`
	TurfName       string    `json:"turfName"`
	SlotDate       string    `json:"slotDate"`
	StartHour      int       `json:"startHour"`
	DurationHours  float64   `json:"durationHours"`
	Method         string    `json:"method"`
	SlotPricePaise int64     `json:"slotPricePaise"`
	PaidPaise      int64     `json:"paidPaise"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

type TurfResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Sport           string    `json:"sport"`
	Area            string    `json:"area"`
	HourlyRatePaise int64     `json:"hourlyRatePaise"`
}

func FromQuoteResult(res *commands.QuoteResult, openingHour int) QuoteResponse {
	bd := res.Breakdown
	return QuoteResponse{
		TurfName:      res.TurfName,
		Date:          res.Selection.Date().Format("2006-01-02"),
		StartLabel:    res.Selection.StartLabel(openingHour),
		DurationHours: res.Selection.Duration().Hours(),
		Breakdown: BreakdownResponse{
			SlotPricePaise:      bd.SlotPrice.Paise(),
			DiscountPaise:       bd.Discount.Paise(),
			Method:              string(bd.Method),
			AdvancePaise:        bd.AdvanceAmount.Paise(),
			PayableAtVenuePaise: bd.PayableAtVenue.Paise(),
			ConvenienceFeePaise: bd.ConvenienceFee.Paise(),
			PayablePaise:        bd.PayableAmount.Paise(),
		},
	}
}

func FromCheckoutResult(res *commands.CheckoutResult, openingHour int) CheckoutResponse {
	summary := res.Summary
	quote := commands.QuoteResult{
		TurfName:  summary.TurfName,
		Selection: summary.Selection,
		Breakdown: summary.Breakdown,
	}
	return CheckoutResponse{
		BookingID: res.BookingID,
		Outcome:   string(res.Outcome),
		Summary:   FromQuoteResult(&quote, openingHour),
	}
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	return BookingResponse{
		ID:             v.ID,
		TurfID:         v.TurfID,
		TurfName:       v.TurfName,
		SlotDate:       v.SlotDate,
		StartHour:      v.StartHour,
		DurationHours:  v.DurationHours,
		Method:         v.Method,
		SlotPricePaise: v.SlotPricePaise,
		PaidPaise:      v.PaidPaise,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
	}
}

func FromTurfView(v *queries.TurfView) TurfResponse {
	return TurfResponse{
		ID:              v.ID,
		Name:            v.Name,
		Sport:           v.Sport,
		Area:            v.Area,
		HourlyRatePaise: v.HourlyRatePaise,
	}
}
