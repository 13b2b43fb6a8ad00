//go:build unit

package booking_test

import (
	"testing"
	"time"

	"turfbook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSelection(t *testing.T, hours float64, ratePaise int64) booking.Selection {
	t.Helper()
	d, err := booking.NewDuration(hours)
	require.NoError(t, err)
	date := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
	sel, err := booking.NewSelection(uuid.New(), date, 3, d, booking.NewMoney(ratePaise))
	require.NoError(t, err)
	return sel
}

func TestPolicyQuote(t *testing.T) {
	policy := booking.NewPolicy(booking.NewMoney(10000), booking.NewMoney(2000))
	noDiscount := booking.NewMoney(0)

	t.Run("advance method charges flat advance plus fee", func(t *testing.T) {
		// 2 hours at Rs 400/hr: slot price Rs 800
		sel := mustSelection(t, 2, 40000)

		bd, err := policy.Quote(sel, booking.PayAdvance, noDiscount)
		require.NoError(t, err)

		assert.Equal(t, int64(80000), bd.SlotPrice.Paise())
		assert.Equal(t, int64(10000), bd.AdvanceAmount.Paise())
		assert.Equal(t, int64(70000), bd.PayableAtVenue.Paise())
		assert.Equal(t, int64(2000), bd.ConvenienceFee.Paise())
		assert.Equal(t, int64(12000), bd.PayableAmount.Paise())
	})

	t.Run("advance amount does not scale with duration", func(t *testing.T) {
		short := mustSelection(t, 0.5, 40000)
		long := mustSelection(t, 5, 40000)

		bdShort, err := policy.Quote(short, booking.PayAdvance, noDiscount)
		require.NoError(t, err)
		bdLong, err := policy.Quote(long, booking.PayAdvance, noDiscount)
		require.NoError(t, err)

		assert.Equal(t, bdShort.PayableAmount, bdLong.PayableAmount)
		assert.Equal(t, int64(12000), bdLong.PayableAmount.Paise())
	})

	t.Run("advance covering the whole price floors venue balance at zero", func(t *testing.T) {
		// half hour at Rs 100/hr: slot price Rs 50, below the advance
		sel := mustSelection(t, 0.5, 10000)

		bd, err := policy.Quote(sel, booking.PayAdvance, noDiscount)
		require.NoError(t, err)

		assert.Equal(t, int64(5000), bd.SlotPrice.Paise())
		assert.Equal(t, int64(0), bd.PayableAtVenue.Paise())
		assert.Equal(t, int64(12000), bd.PayableAmount.Paise())
	})

	t.Run("full method charges slot price plus fee", func(t *testing.T) {
		sel := mustSelection(t, 2, 40000)

		bd, err := policy.Quote(sel, booking.PayFull, noDiscount)
		require.NoError(t, err)

		assert.Equal(t, int64(80000), bd.SlotPrice.Paise())
		assert.Equal(t, int64(0), bd.AdvanceAmount.Paise())
		assert.Equal(t, int64(0), bd.PayableAtVenue.Paise())
		assert.Equal(t, int64(82000), bd.PayableAmount.Paise())
	})

	t.Run("full method applies the discount up front", func(t *testing.T) {
		sel := mustSelection(t, 2, 40000)

		bd, err := policy.Quote(sel, booking.PayFull, booking.NewMoney(15000))
		require.NoError(t, err)

		assert.Equal(t, int64(15000), bd.Discount.Paise())
		assert.Equal(t, int64(67000), bd.PayableAmount.Paise())
	})

	t.Run("discount is capped at the slot price", func(t *testing.T) {
		sel := mustSelection(t, 0.5, 10000) // slot price 5000

		bd, err := policy.Quote(sel, booking.PayFull, booking.NewMoney(999999))
		require.NoError(t, err)

		assert.Equal(t, int64(5000), bd.Discount.Paise())
		// only the fee remains payable
		assert.Equal(t, int64(2000), bd.PayableAmount.Paise())
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		sel := mustSelection(t, 2, 40000)

		_, err := policy.Quote(sel, booking.PaymentMethod("upi"), noDiscount)
		assert.ErrorIs(t, err, booking.ErrInvalidPaymentMethod)
	})
}

func TestSelection(t *testing.T) {
	date := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
	duration, err := booking.NewDuration(1)
	require.NoError(t, err)
	rate := booking.NewMoney(40000)

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name      string
			date      time.Time
			hourIndex int
			rate      booking.Money
			errIs     error
		}{
			{name: "valid", date: date, hourIndex: 1, rate: rate},
			{name: "last slot", date: date, hourIndex: 12, rate: rate},
			{name: "zero date", date: time.Time{}, hourIndex: 1, rate: rate, errIs: booking.ErrZeroDate},
			{name: "hour index below range", date: date, hourIndex: 0, rate: rate, errIs: booking.ErrInvalidHourIndex},
			{name: "hour index above range", date: date, hourIndex: 13, rate: rate, errIs: booking.ErrInvalidHourIndex},
			{name: "zero rate", date: date, hourIndex: 1, rate: booking.NewMoney(0), errIs: booking.ErrNonPositiveRate},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.NewSelection(uuid.New(), tc.date, tc.hourIndex, duration, tc.rate)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("slot price derives from duration and rate", func(t *testing.T) {
		sel, err := booking.NewSelection(uuid.New(), date, 3, duration, rate)
		require.NoError(t, err)
		assert.Equal(t, int64(40000), sel.SlotPrice().Paise())
	})

	t.Run("start label follows the opening hour", func(t *testing.T) {
		sel, err := booking.NewSelection(uuid.New(), date, 3, duration, rate)
		require.NoError(t, err)
		assert.Equal(t, "8:00 AM", sel.StartLabel(6))
	})
}
