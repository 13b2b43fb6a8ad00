package commands

import (
	"context"
	"log/slog"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/checkout"
	"turfbook/internal/domain/coupon"
	"turfbook/internal/domain/schedule"
	"turfbook/internal/domain/squad"
	"turfbook/internal/domain/turf"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type QuoteParams struct {
	TurfID        uuid.UUID
	Date          time.Time
	HourIndex     int
	DurationHours float64
	Method        string
	CouponCode    *string
}

type QuoteResult struct {
	TurfName  string
	Selection booking.Selection
	Breakdown booking.Breakdown
}

type CheckoutParams struct {
	QuoteParams
	SquadID *uuid.UUID
}

type CheckoutResult struct {
	BookingID uuid.UUID
	Outcome   checkout.PaymentOutcome
	Summary   checkout.Summary
}

type BookingCommands interface {
	Quote(ctx context.Context, params QuoteParams) (*QuoteResult, error)
	Checkout(ctx context.Context, userID uuid.UUID, params CheckoutParams) (*CheckoutResult, error)
}

type bookingCommandsImpl struct {
	turfRepo        TurfRepository
	couponRepo      CouponRepository
	reservationRepo ReservationRepository
	squadStore      SquadStore
	provider        schedule.AvailabilityProvider
	invalidator     AvailabilityInvalidator
	gateway         checkout.PaymentGateway
	policy          booking.Policy
	defaultRate     booking.Money
	clock           clock.Clock
}

func NewBookingCommands(
	turfRepo TurfRepository,
	couponRepo CouponRepository,
	reservationRepo ReservationRepository,
	squadStore SquadStore,
	provider schedule.AvailabilityProvider,
	invalidator AvailabilityInvalidator,
	gateway checkout.PaymentGateway,
	policy booking.Policy,
	defaultRate booking.Money,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		turfRepo:        turfRepo,
		couponRepo:      couponRepo,
		reservationRepo: reservationRepo,
		squadStore:      squadStore,
		provider:        provider,
		invalidator:     invalidator,
		gateway:         gateway,
		policy:          policy,
		defaultRate:     defaultRate,
		clock:           clk,
	}
}

func (b *bookingCommandsImpl) Quote(ctx context.Context, params QuoteParams) (*QuoteResult, error) {
	return b.buildQuote(ctx, params)
}

func (b *bookingCommandsImpl) Checkout(ctx context.Context, userID uuid.UUID, params CheckoutParams) (*CheckoutResult, error) {
	quote, err := b.buildQuote(ctx, params.QuoteParams)
	if err != nil {
		return nil, err
	}

	if err := b.ensureSlotFree(ctx, quote.Selection); err != nil {
		return nil, err
	}

	var roster *squad.Squad
	if params.SquadID != nil {
		roster, err = b.squadStore.Find(ctx, *params.SquadID)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrSquadNotFound)
		}
	}

	summary := checkout.AssembleSummary(quote.TurfName, quote.Selection, quote.Breakdown, roster)
	bookingID := uuid.New()

	outcome, err := b.gateway.Charge(ctx, checkout.PaymentRequest{
		BookingID: bookingID,
		Amount:    summary.Breakdown.PayableAmount,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentFailed)
	}
	if !outcome.IsValid() {
		return nil, errs.Mark(errs.New("unrecognized payment outcome"), errs.ErrPaymentFailed)
	}

	result := &CheckoutResult{
		BookingID: bookingID,
		Outcome:   outcome,
		Summary:   summary,
	}
	if outcome != checkout.PaymentConfirmed {
		return result, nil
	}

	rec := ReservationRecord{
		ID:             bookingID,
		TurfID:         quote.Selection.TurfID(),
		UserID:         userID,
		SlotDate:       quote.Selection.Date(),
		StartHour:      quote.Selection.HourIndex(),
		HalfHours:      quote.Selection.Duration().HalfHours(),
		Method:         string(summary.Breakdown.Method),
		SlotPricePaise: summary.Breakdown.SlotPrice.Paise(),
		PaidPaise:      summary.Breakdown.PayableAmount.Paise(),
		Status:         "confirmed",
	}
	if err := b.reservationRepo.Create(ctx, rec); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := b.invalidator.Invalidate(ctx, rec.TurfID, rec.SlotDate); err != nil {
		// Stale cache self-heals on TTL expiry.
		slog.Warn("failed to invalidate availability cache",
			"turf_id", rec.TurfID.String(),
			"date", schedule.DateKey(rec.SlotDate),
			"error", err.Error(),
		)
	}

	return result, nil
}

func (b *bookingCommandsImpl) buildQuote(ctx context.Context, params QuoteParams) (*QuoteResult, error) {
	turfSnap, err := b.turfRepo.FindByID(ctx, params.TurfID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrTurfNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	venue, err := turf.NewTurf(turfSnap.ID, turfSnap.Name, turfSnap.Sport, turfSnap.Area, booking.NewMoney(turfSnap.HourlyRatePaise))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rate := venue.RateOrDefault(b.defaultRate)
	if !venue.HourlyRate().IsPositive() {
		slog.Warn("turf has no hourly rate, falling back to default",
			"turf_id", venue.ID().String(),
		)
	}

	duration, err := booking.NewDuration(params.DurationHours)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSelection)
	}

	selection, err := booking.NewSelection(params.TurfID, params.Date, params.HourIndex, duration, rate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSelection)
	}

	discount := booking.NewMoney(0)
	if params.CouponCode != nil {
		coup, couponErr := b.resolveCoupon(ctx, *params.CouponCode)
		if couponErr != nil {
			return nil, couponErr
		}
		discount = coup.DiscountFor(selection.SlotPrice())
	}

	breakdown, err := b.policy.Quote(selection, booking.PaymentMethod(params.Method), discount)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSelection)
	}

	return &QuoteResult{
		TurfName:  venue.Name(),
		Selection: selection,
		Breakdown: breakdown,
	}, nil
}

func (b *bookingCommandsImpl) resolveCoupon(ctx context.Context, code string) (*coupon.Coupon, error) {
	snap, err := b.couponRepo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCouponNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	coup, err := coupon.NewCoupon(snap.ID, snap.Code, snap.AmountOffPaise, snap.PercentOff, snap.ValidFrom, snap.ValidTo)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}
	if err := coup.ValidateUsage(b.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}
	return coup, nil
}

// ensureSlotFree re-checks the reservation authority right before payment.
// A failed availability query blocks checkout; unknown is never treated as
// free here.
func (b *bookingCommandsImpl) ensureSlotFree(ctx context.Context, sel booking.Selection) error {
	booked, err := b.provider.BookedHours(ctx, sel.TurfID(), sel.Date())
	if err != nil {
		return errs.Mark(err, errs.ErrAvailabilityQuery)
	}
	for _, hour := range OccupiedHours(sel.HourIndex(), sel.Duration()) {
		if booked[hour] {
			return errs.ErrSlotUnavailable
		}
	}
	return nil
}

// OccupiedHours lists the hour indices a selection spans; a trailing half
// hour still occupies the whole slot.
func OccupiedHours(startHour int, d booking.Duration) []int {
	span := (d.HalfHours() + 1) / 2
	hours := make([]int, 0, span)
	for i := 0; i < span; i++ {
		hours = append(hours, startHour+i)
	}
	return hours
}
