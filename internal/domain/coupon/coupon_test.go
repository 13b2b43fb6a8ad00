//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/coupon"
	"turfbook/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	cases := []struct {
		name  string
		code  string
		want  string
		errIs error
	}{
		{name: "plain uppercase", code: "SAVE50", want: "SAVE50"},
		{name: "lowercase is normalized", code: "save50", want: "SAVE50"},
		{name: "surrounding whitespace trimmed", code: "  SAVE50  ", want: "SAVE50"},
		{name: "minimum length", code: "ABC", want: "ABC"},
		{name: "too short", code: "AB", errIs: coupon.ErrInvalidCouponCode},
		{name: "too long", code: "ABCDEFGHIJKLMNOPQRSTU", errIs: coupon.ErrInvalidCouponCode},
		{name: "special characters", code: "SAVE-50", errIs: coupon.ErrInvalidCouponCode},
		{name: "empty", code: "", errIs: coupon.ErrInvalidCouponCode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := coupon.NewCode(tc.code)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, code.String())
			}
		})
	}
}

func TestNewDiscount(t *testing.T) {
	t.Run("exactly one of amount and percent", func(t *testing.T) {
		_, err := coupon.NewDiscount(nil, nil)
		assert.ErrorIs(t, err, coupon.ErrAmbiguousDiscount)

		_, err = coupon.NewDiscount(ptr.To(int64(5000)), ptr.To(10.0))
		assert.ErrorIs(t, err, coupon.ErrAmbiguousDiscount)
	})

	t.Run("fixed amount bounds", func(t *testing.T) {
		_, err := coupon.NewFixedDiscount(-1)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountAmount)

		d, err := coupon.NewFixedDiscount(5000)
		require.NoError(t, err)
		assert.False(t, d.IsPercentage())
		assert.Equal(t, int64(5000), d.AmountOffPaise())
	})

	t.Run("percentage bounds", func(t *testing.T) {
		_, err := coupon.NewPercentageDiscount(-0.1)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)

		_, err = coupon.NewPercentageDiscount(100.1)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountPercent)

		d, err := coupon.NewPercentageDiscount(25)
		require.NoError(t, err)
		assert.True(t, d.IsPercentage())
	})
}

func TestDiscountAmountFor(t *testing.T) {
	t.Run("fixed discount is capped at the price", func(t *testing.T) {
		d, err := coupon.NewFixedDiscount(10000)
		require.NoError(t, err)

		assert.Equal(t, int64(10000), d.AmountFor(80000))
		assert.Equal(t, int64(5000), d.AmountFor(5000))
	})

	t.Run("percentage scales with the price", func(t *testing.T) {
		d, err := coupon.NewPercentageDiscount(25)
		require.NoError(t, err)

		assert.Equal(t, int64(20000), d.AmountFor(80000))
		assert.Equal(t, int64(0), d.AmountFor(0))
	})
}

func TestCouponValidity(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	newCoupon := func(t *testing.T, from, to *time.Time) *coupon.Coupon {
		t.Helper()
		c, err := coupon.NewCoupon(uuid.New(), "SAVE50", ptr.To(int64(5000)), nil, from, to)
		require.NoError(t, err)
		return c
	}

	t.Run("open ended coupon is always valid", func(t *testing.T) {
		c := newCoupon(t, nil, nil)
		assert.NoError(t, c.ValidateUsage(now))
	})

	t.Run("inside the window", func(t *testing.T) {
		from := now.AddDate(0, 0, -1)
		to := now.AddDate(0, 0, 1)
		c := newCoupon(t, &from, &to)
		assert.NoError(t, c.ValidateUsage(now))
	})

	t.Run("not yet valid", func(t *testing.T) {
		from := now.AddDate(0, 0, 1)
		c := newCoupon(t, &from, nil)
		assert.ErrorIs(t, c.ValidateUsage(now), coupon.ErrCouponNotYetValid)
	})

	t.Run("expired", func(t *testing.T) {
		to := now.AddDate(0, 0, -1)
		c := newCoupon(t, nil, &to)
		assert.ErrorIs(t, c.ValidateUsage(now), coupon.ErrCouponExpired)
	})
}

func TestCouponDiscountFor(t *testing.T) {
	c, err := coupon.NewCoupon(uuid.New(), "FLAT100", ptr.To(int64(10000)), nil, nil, nil)
	require.NoError(t, err)

	got := c.DiscountFor(booking.NewMoney(80000))
	assert.Equal(t, int64(10000), got.Paise())

	capped := c.DiscountFor(booking.NewMoney(4000))
	assert.Equal(t, int64(4000), capped.Paise())
}
