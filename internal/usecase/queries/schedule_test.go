//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"turfbook/internal/domain/schedule"
	"turfbook/internal/pkg/clock"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"
	domainmock "turfbook/tests/mock/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testWindowDays  = 30
	testOpeningHour = 6
)

func newScheduleQueries(t *testing.T) (queries.ScheduleQueries, *domainmock.MockAvailabilityProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := domainmock.NewMockAvailabilityProvider(ctrl)
	clk := clock.NewMockClock(time.Date(2026, time.August, 29, 10, 30, 0, 0, time.UTC))
	return queries.NewScheduleQueries(provider, clk, testWindowDays, testOpeningHour), provider
}

func TestScheduleQueries_Calendar(t *testing.T) {
	t.Run("uses the configured window by default", func(t *testing.T) {
		q, _ := newScheduleQueries(t)

		days := q.Calendar(0)

		require.Len(t, days, testWindowDays)
		assert.Equal(t, 29, days[0].Date)
		assert.Equal(t, "SAT", days[0].Weekday)
		assert.True(t, days[0].IsToday)
		assert.False(t, days[1].IsToday)
	})

	t.Run("explicit window overrides the default", func(t *testing.T) {
		q, _ := newScheduleQueries(t)

		days := q.Calendar(7)

		require.Len(t, days, 7)
		assert.Equal(t, "Aug", days[0].Month)
		// window crosses into September on day 4
		assert.Equal(t, "Sep", days[3].Month)
		assert.Equal(t, 1, days[3].Date)
	})
}

func TestScheduleQueries_Slots(t *testing.T) {
	turfID := uuid.New()
	date := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)

	t.Run("marks booked hours", func(t *testing.T) {
		q, provider := newScheduleQueries(t)
		provider.EXPECT().BookedHours(gomock.Any(), turfID, date).
			Return(map[int]bool{3: true}, nil)

		slots, err := q.Slots(context.Background(), turfID, date)
		require.NoError(t, err)

		require.Len(t, slots, schedule.SlotCount)
		assert.Equal(t, string(schedule.StatusBooked), slots[2].Status)
		assert.Equal(t, string(schedule.StatusAvailable), slots[0].Status)
		assert.Equal(t, "6:00 AM", slots[0].Label)
	})

	t.Run("provider outage serves unknown slots without an error", func(t *testing.T) {
		q, provider := newScheduleQueries(t)
		provider.EXPECT().BookedHours(gomock.Any(), turfID, date).
			Return(nil, errs.New("connection refused"))

		slots, err := q.Slots(context.Background(), turfID, date)
		require.NoError(t, err)

		require.Len(t, slots, schedule.SlotCount)
		for _, s := range slots {
			assert.Equal(t, string(schedule.StatusUnknown), s.Status)
		}
	})
}
