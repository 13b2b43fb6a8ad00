//go:build unit

package checkout_test

import (
	"testing"
	"time"

	"turfbook/internal/domain/booking"
	"turfbook/internal/domain/checkout"
	"turfbook/internal/domain/squad"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSummary(t *testing.T) {
	duration, err := booking.NewDuration(2)
	require.NoError(t, err)
	date := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
	sel, err := booking.NewSelection(uuid.New(), date, 3, duration, booking.NewMoney(40000))
	require.NoError(t, err)

	policy := booking.NewPolicy(booking.NewMoney(10000), booking.NewMoney(2000))
	bd, err := policy.Quote(sel, booking.PayAdvance, booking.NewMoney(0))
	require.NoError(t, err)

	t.Run("carries all pipeline outputs", func(t *testing.T) {
		sq, err := squad.NewSquad("evt-1", "League", "football", "Strikers", 5)
		require.NoError(t, err)

		summary := checkout.AssembleSummary("Greenfield Arena", sel, bd, sq)
		assert.Equal(t, "Greenfield Arena", summary.TurfName)
		assert.Equal(t, sel, summary.Selection)
		assert.Equal(t, bd, summary.Breakdown)
		assert.Same(t, sq, summary.Squad)
	})

	t.Run("missing turf name falls back instead of failing", func(t *testing.T) {
		summary := checkout.AssembleSummary("", sel, bd, nil)
		assert.Equal(t, "Turf", summary.TurfName)
		assert.Nil(t, summary.Squad)
	})
}
