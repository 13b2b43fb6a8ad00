package queries

import (
	"context"
	"log/slog"
	"time"

	"turfbook/internal/domain/schedule"
	"turfbook/internal/pkg/clock"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	Calendar(windowDays int) []CalendarDayView
	Slots(ctx context.Context, turfID uuid.UUID, date time.Time) ([]SlotView, error)
}

type scheduleQueriesImpl struct {
	provider    schedule.AvailabilityProvider
	clock       clock.Clock
	windowDays  int
	openingHour int
}

func NewScheduleQueries(provider schedule.AvailabilityProvider, clk clock.Clock, windowDays, openingHour int) ScheduleQueries {
	return &scheduleQueriesImpl{
		provider:    provider,
		clock:       clk,
		windowDays:  windowDays,
		openingHour: openingHour,
	}
}

func (q *scheduleQueriesImpl) Calendar(windowDays int) []CalendarDayView {
	if windowDays <= 0 {
		windowDays = q.windowDays
	}

	days := schedule.GenerateCalendar(clock.Today(q.clock), windowDays)
	views := make([]CalendarDayView, len(days))
	for i, d := range days {
		views[i] = CalendarDayView{
			Date:    d.Date,
			Weekday: string(d.Weekday),
			Month:   d.Month,
			IsToday: d.IsToday,
		}
	}
	return views
}

// Slots never fails outright: when the reservation authority is
// unreachable the slots come back with unknown status and the condition
// is logged as a warning.
func (q *scheduleQueriesImpl) Slots(ctx context.Context, turfID uuid.UUID, date time.Time) ([]SlotView, error) {
	slots, err := schedule.GenerateTimeSlots(ctx, q.provider, turfID, date, q.openingHour)
	if err != nil {
		slog.Warn("availability query failed, serving unknown slots",
			"turf_id", turfID.String(),
			"date", schedule.DateKey(date),
			"error", err.Error(),
		)
	}

	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{
			HourIndex: s.HourIndex,
			Label:     s.Label,
			Status:    string(s.Status),
		}
	}
	return views, nil
}
