//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"turfbook/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCalendar(t *testing.T) {
	today := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC) // a Saturday

	t.Run("window size and first day", func(t *testing.T) {
		days := schedule.GenerateCalendar(today, 30)
		require.Len(t, days, 30)

		assert.True(t, days[0].IsToday)
		assert.Equal(t, 29, days[0].Date)
		assert.Equal(t, schedule.Saturday, days[0].Weekday)
		assert.Equal(t, "Aug", days[0].Month)

		for _, d := range days[1:] {
			assert.False(t, d.IsToday)
		}
	})

	t.Run("weekdays cycle through the week", func(t *testing.T) {
		days := schedule.GenerateCalendar(today, 8)
		want := []schedule.Weekday{
			schedule.Saturday, schedule.Sunday, schedule.Monday, schedule.Tuesday,
			schedule.Wednesday, schedule.Thursday, schedule.Friday, schedule.Saturday,
		}
		for i, d := range days {
			assert.Equal(t, want[i], d.Weekday)
		}
	})

	t.Run("window crosses the month boundary", func(t *testing.T) {
		days := schedule.GenerateCalendar(today, 5)
		want := []schedule.CalendarDay{
			{Date: 29, Weekday: schedule.Saturday, Month: "Aug", IsToday: true},
			{Date: 30, Weekday: schedule.Sunday, Month: "Aug"},
			{Date: 31, Weekday: schedule.Monday, Month: "Aug"},
			{Date: 1, Weekday: schedule.Tuesday, Month: "Sep"},
			{Date: 2, Weekday: schedule.Wednesday, Month: "Sep"},
		}
		if diff := cmp.Diff(want, days); diff != "" {
			t.Errorf("calendar mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("deterministic for a fixed today", func(t *testing.T) {
		a := schedule.GenerateCalendar(today, 30)
		b := schedule.GenerateCalendar(today, 30)
		assert.Equal(t, a, b)
	})

	t.Run("non-positive window yields nothing", func(t *testing.T) {
		assert.Nil(t, schedule.GenerateCalendar(today, 0))
		assert.Nil(t, schedule.GenerateCalendar(today, -3))
	})
}
