//go:build unit

package schedule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"turfbook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	booked map[int]bool
	err    error
}

func (p stubProvider) BookedHours(_ context.Context, _ uuid.UUID, _ time.Time) (map[int]bool, error) {
	return p.booked, p.err
}

func TestGenerateTimeSlots(t *testing.T) {
	ctx := context.Background()
	turfID := uuid.New()
	date := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)

	t.Run("marks booked hours and leaves the rest available", func(t *testing.T) {
		provider := stubProvider{booked: map[int]bool{2: true, 7: true}}

		slots, err := schedule.GenerateTimeSlots(ctx, provider, turfID, date, 6)
		require.NoError(t, err)
		require.Len(t, slots, schedule.SlotCount)

		for _, s := range slots {
			if s.HourIndex == 2 || s.HourIndex == 7 {
				assert.Equal(t, schedule.StatusBooked, s.Status, "hour %d", s.HourIndex)
			} else {
				assert.Equal(t, schedule.StatusAvailable, s.Status, "hour %d", s.HourIndex)
			}
		}
	})

	t.Run("provider failure yields unknown for every slot", func(t *testing.T) {
		provider := stubProvider{err: errors.New("connection refused")}

		slots, err := schedule.GenerateTimeSlots(ctx, provider, turfID, date, 6)
		require.Error(t, err)
		require.Len(t, slots, schedule.SlotCount)

		for _, s := range slots {
			assert.Equal(t, schedule.StatusUnknown, s.Status)
		}
	})

	t.Run("labels follow the opening hour", func(t *testing.T) {
		provider := stubProvider{booked: map[int]bool{}}

		slots, err := schedule.GenerateTimeSlots(ctx, provider, turfID, date, 6)
		require.NoError(t, err)

		assert.Equal(t, "6:00 AM", slots[0].Label)
		assert.Equal(t, "12:00 PM", slots[6].Label)
		assert.Equal(t, "5:00 PM", slots[11].Label)
	})
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "6:00 AM", schedule.SlotLabel(6, 1))
	assert.Equal(t, "11:00 AM", schedule.SlotLabel(6, 6))
	assert.Equal(t, "12:00 PM", schedule.SlotLabel(6, 7))
	assert.Equal(t, "9:00 AM", schedule.SlotLabel(9, 1))
}

func TestDateKey(t *testing.T) {
	d := time.Date(2026, time.September, 5, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-09-05", schedule.DateKey(d))
}
