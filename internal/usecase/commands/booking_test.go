//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/checkout"
	"turfbook/internal/domain/squad"
	"turfbook/internal/infra"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/pkg/ptr"
	"turfbook/internal/usecase/commands"
	commandsmock "turfbook/tests/mock/commands"
	domainmock "turfbook/tests/mock/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	turfRepo        *commandsmock.MockTurfRepository
	couponRepo      *commandsmock.MockCouponRepository
	reservationRepo *commandsmock.MockReservationRepository
	squadStore      *commandsmock.MockSquadStore
	provider        *domainmock.MockAvailabilityProvider
	invalidator     *commandsmock.MockAvailabilityInvalidator
	gateway         *domainmock.MockPaymentGateway
	clock           *clock.MockClock
	commands        commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.turfRepo = commandsmock.NewMockTurfRepository(s.ctrl)
	s.couponRepo = commandsmock.NewMockCouponRepository(s.ctrl)
	s.reservationRepo = commandsmock.NewMockReservationRepository(s.ctrl)
	s.squadStore = commandsmock.NewMockSquadStore(s.ctrl)
	s.provider = domainmock.NewMockAvailabilityProvider(s.ctrl)
	s.invalidator = commandsmock.NewMockAvailabilityInvalidator(s.ctrl)
	s.gateway = domainmock.NewMockPaymentGateway(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC))

	s.commands = commands.NewBookingCommands(
		s.turfRepo,
		s.couponRepo,
		s.reservationRepo,
		s.squadStore,
		s.provider,
		s.invalidator,
		s.gateway,
		booking.NewPolicy(booking.NewMoney(10000), booking.NewMoney(2000)),
		booking.NewMoney(40000),
		s.clock,
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) turfSnapshot(ratePaise int64) *commands.TurfSnapshot {
	return &commands.TurfSnapshot{
		ID:              uuid.New(),
		Name:            "Greenfield Arena",
		Sport:           "football",
		Area:            "Andheri West",
		HourlyRatePaise: ratePaise,
	}
}

func (s *BookingCommandsTestSuite) newSquad() *squad.Squad {
	sq, err := squad.NewSquad("evt-2026-001", "Sunday Night League", "football", "Juhu Strikers", 5)
	s.Require().NoError(err)
	return sq
}

func (s *BookingCommandsTestSuite) quoteParams(turfID uuid.UUID) commands.QuoteParams {
	return commands.QuoteParams{
		TurfID:        turfID,
		Date:          time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
		HourIndex:     3,
		DurationHours: 2,
		Method:        "advance",
	}
}

func (s *BookingCommandsTestSuite) TestQuote() {
	s.Run("advance quote for a priced turf", func() {
		snap := s.turfSnapshot(40000)
		params := s.quoteParams(snap.ID)
		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)

		result, err := s.commands.Quote(context.Background(), params)
		s.Require().NoError(err)

		s.Equal("Greenfield Arena", result.TurfName)
		s.Equal(int64(80000), result.Breakdown.SlotPrice.Paise())
		s.Equal(int64(12000), result.Breakdown.PayableAmount.Paise())
		s.Equal(int64(70000), result.Breakdown.PayableAtVenue.Paise())
	})

	s.Run("unpriced turf falls back to the default rate", func() {
		snap := s.turfSnapshot(0)
		params := s.quoteParams(snap.ID)
		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)

		result, err := s.commands.Quote(context.Background(), params)
		s.Require().NoError(err)

		s.Equal(int64(80000), result.Breakdown.SlotPrice.Paise())
	})

	s.Run("unknown turf", func() {
		turfID := uuid.New()
		s.turfRepo.EXPECT().FindByID(gomock.Any(), turfID).
			Return(nil, infra.WrapRepoErr("turf not found", errs.New("no rows"), infra.KindNotFound))

		_, err := s.commands.Quote(context.Background(), s.quoteParams(turfID))
		s.ErrorIs(err, errs.ErrTurfNotFound)
	})

	s.Run("invalid duration", func() {
		snap := s.turfSnapshot(40000)
		params := s.quoteParams(snap.ID)
		params.DurationHours = 1.25
		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.commands.Quote(context.Background(), params)
		s.ErrorIs(err, errs.ErrInvalidSelection)
	})

	s.Run("full quote with a valid coupon", func() {
		snap := s.turfSnapshot(40000)
		params := s.quoteParams(snap.ID)
		params.Method = "full"
		params.CouponCode = ptr.To("SAVE100")

		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.couponRepo.EXPECT().FindByCode(gomock.Any(), "SAVE100").Return(&commands.CouponSnapshot{
			ID:             uuid.New(),
			Code:           "SAVE100",
			AmountOffPaise: ptr.To(int64(10000)),
		}, nil)

		result, err := s.commands.Quote(context.Background(), params)
		s.Require().NoError(err)

		s.Equal(int64(10000), result.Breakdown.Discount.Paise())
		// 80000 - 10000 + 2000 fee
		s.Equal(int64(72000), result.Breakdown.PayableAmount.Paise())
	})

	s.Run("expired coupon", func() {
		snap := s.turfSnapshot(40000)
		params := s.quoteParams(snap.ID)
		params.CouponCode = ptr.To("OLD50")
		expiry := s.clock.Now().AddDate(0, 0, -1)

		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.couponRepo.EXPECT().FindByCode(gomock.Any(), "OLD50").Return(&commands.CouponSnapshot{
			ID:             uuid.New(),
			Code:           "OLD50",
			AmountOffPaise: ptr.To(int64(5000)),
			ValidTo:        &expiry,
		}, nil)

		_, err := s.commands.Quote(context.Background(), params)
		s.ErrorIs(err, errs.ErrInvalidCoupon)
	})

	s.Run("unknown coupon", func() {
		snap := s.turfSnapshot(40000)
		params := s.quoteParams(snap.ID)
		params.CouponCode = ptr.To("NOPE")

		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.couponRepo.EXPECT().FindByCode(gomock.Any(), "NOPE").
			Return(nil, infra.WrapRepoErr("coupon not found", errs.New("no rows"), infra.KindNotFound))

		_, err := s.commands.Quote(context.Background(), params)
		s.ErrorIs(err, errs.ErrCouponNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestCheckout() {
	userID := uuid.New()

	s.Run("confirmed payment persists the reservation and invalidates cache", func() {
		snap := s.turfSnapshot(40000)
		params := commands.CheckoutParams{QuoteParams: s.quoteParams(snap.ID)}

		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.provider.EXPECT().BookedHours(gomock.Any(), snap.ID, params.Date).Return(map[int]bool{}, nil)
		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req checkout.PaymentRequest) (checkout.PaymentOutcome, error) {
				s.Equal(int64(12000), req.Amount.Paise())
				return checkout.PaymentConfirmed, nil
			})
		s.reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec commands.ReservationRecord) error {
				s.Equal(snap.ID, rec.TurfID)
				s.Equal(userID, rec.UserID)
				s.Equal(3, rec.StartHour)
				s.Equal(4, rec.HalfHours)
				s.Equal("advance", rec.Method)
				s.Equal(int64(80000), rec.SlotPricePaise)
				s.Equal(int64(12000), rec.PaidPaise)
				s.Equal("confirmed", rec.Status)
				return nil
			})
		s.invalidator.EXPECT().Invalidate(gomock.Any(), snap.ID, params.Date).Return(nil)

		result, err := s.commands.Checkout(context.Background(), userID, params)
		s.Require().NoError(err)

		s.Equal(checkout.PaymentConfirmed, result.Outcome)
		s.NotEqual(uuid.Nil, result.BookingID)
		s.Equal("Greenfield Arena", result.Summary.TurfName)
	})

	s.Run("slot taken since the quote", func() {
		snap := s.turfSnapshot(40000)
		params := commands.CheckoutParams{QuoteParams: s.quoteParams(snap.ID)}

		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.provider.EXPECT().BookedHours(gomock.Any(), snap.ID, params.Date).
			Return(map[int]bool{4: true}, nil) // second hour of the 2h span

		_, err := s.commands.Checkout(context.Background(), userID, params)
		s.ErrorIs(err, errs.ErrSlotUnavailable)
	})

	s.Run("availability query failure blocks checkout", func() {
		snap := s.turfSnapshot(40000)
		params := commands.CheckoutParams{QuoteParams: s.quoteParams(snap.ID)}

		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.provider.EXPECT().BookedHours(gomock.Any(), snap.ID, params.Date).
			Return(nil, errs.New("connection refused"))

		_, err := s.commands.Checkout(context.Background(), userID, params)
		s.ErrorIs(err, errs.ErrAvailabilityQuery)
	})

	s.Run("cancelled payment returns the outcome without persisting", func() {
		snap := s.turfSnapshot(40000)
		params := commands.CheckoutParams{QuoteParams: s.quoteParams(snap.ID)}

		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.provider.EXPECT().BookedHours(gomock.Any(), snap.ID, params.Date).Return(map[int]bool{}, nil)
		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(checkout.PaymentCancelled, nil)

		result, err := s.commands.Checkout(context.Background(), userID, params)
		s.Require().NoError(err)
		s.Equal(checkout.PaymentCancelled, result.Outcome)
	})

	s.Run("gateway failure", func() {
		snap := s.turfSnapshot(40000)
		params := commands.CheckoutParams{QuoteParams: s.quoteParams(snap.ID)}

		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.provider.EXPECT().BookedHours(gomock.Any(), snap.ID, params.Date).Return(map[int]bool{}, nil)
		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).
			Return(checkout.PaymentOutcome(""), errs.New("gateway timeout"))

		_, err := s.commands.Checkout(context.Background(), userID, params)
		s.ErrorIs(err, errs.ErrPaymentFailed)
	})

	s.Run("cache invalidation failure does not fail the checkout", func() {
		snap := s.turfSnapshot(40000)
		params := commands.CheckoutParams{QuoteParams: s.quoteParams(snap.ID)}

		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.provider.EXPECT().BookedHours(gomock.Any(), snap.ID, params.Date).Return(map[int]bool{}, nil)
		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(checkout.PaymentConfirmed, nil)
		s.reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.invalidator.EXPECT().Invalidate(gomock.Any(), snap.ID, params.Date).
			Return(errs.New("redis down"))

		result, err := s.commands.Checkout(context.Background(), userID, params)
		s.Require().NoError(err)
		s.Equal(checkout.PaymentConfirmed, result.Outcome)
	})

	s.Run("attached squad rides along in the summary", func() {
		snap := s.turfSnapshot(40000)
		sq := s.newSquad()
		squadID := sq.ID()
		params := commands.CheckoutParams{
			QuoteParams: s.quoteParams(snap.ID),
			SquadID:     &squadID,
		}

		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.provider.EXPECT().BookedHours(gomock.Any(), snap.ID, params.Date).Return(map[int]bool{}, nil)
		s.squadStore.EXPECT().Find(gomock.Any(), squadID).Return(sq, nil)
		s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(checkout.PaymentConfirmed, nil)
		s.reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.invalidator.EXPECT().Invalidate(gomock.Any(), snap.ID, params.Date).Return(nil)

		result, err := s.commands.Checkout(context.Background(), userID, params)
		s.Require().NoError(err)
		s.Same(sq, result.Summary.Squad)
	})

	s.Run("unknown squad", func() {
		snap := s.turfSnapshot(40000)
		squadID := uuid.New()
		params := commands.CheckoutParams{
			QuoteParams: s.quoteParams(snap.ID),
			SquadID:     &squadID,
		}

		s.turfRepo.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.provider.EXPECT().BookedHours(gomock.Any(), snap.ID, params.Date).Return(map[int]bool{}, nil)
		s.squadStore.EXPECT().Find(gomock.Any(), squadID).
			Return(nil, infra.WrapRepoErr("squad not found", nil, infra.KindNotFound))

		_, err := s.commands.Checkout(context.Background(), userID, params)
		s.ErrorIs(err, errs.ErrSquadNotFound)
	})
}

func TestOccupiedHours(t *testing.T) {
	cases := []struct {
		name      string
		hours     float64
		startHour int
		want      []int
	}{
		{name: "half hour occupies one slot", hours: 0.5, startHour: 3, want: []int{3}},
		{name: "one hour occupies one slot", hours: 1, startHour: 3, want: []int{3}},
		{name: "ninety minutes spill into the next slot", hours: 1.5, startHour: 3, want: []int{3, 4}},
		{name: "two hours", hours: 2, startHour: 3, want: []int{3, 4}},
		{name: "five hours", hours: 5, startHour: 1, want: []int{1, 2, 3, 4, 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := booking.NewDuration(tc.hours)
			if err != nil {
				t.Fatalf("NewDuration(%v): %v", tc.hours, err)
			}
			got := commands.OccupiedHours(tc.startHour, d)
			if len(got) != len(tc.want) {
				t.Fatalf("OccupiedHours = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("OccupiedHours = %v, want %v", got, tc.want)
				}
			}
		})
	}
}
