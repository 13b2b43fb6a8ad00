package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SlotCount is the number of hourly slots shown per day.
const SlotCount = 12

type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBooked    SlotStatus = "booked"
	// StatusUnknown marks slots whose reservation state could not be
	// determined. Never defaulted to available.
	StatusUnknown SlotStatus = "unknown"
)

// TimeSlot is one bookable hour for a turf on a given date.
type TimeSlot struct {
	HourIndex int // 1..SlotCount
	Label     string
	Status    SlotStatus
}

// AvailabilityProvider is the reservation authority. BookedHours returns
// the set of hour indices already reserved for (turfID, date).
type AvailabilityProvider interface {
	BookedHours(ctx context.Context, turfID uuid.UUID, date time.Time) (map[int]bool, error)
}

// GenerateTimeSlots builds the day's slot list for a turf. Availability
// comes exclusively from the provider; when the query fails every slot is
// reported StatusUnknown rather than optimistically available.
func GenerateTimeSlots(ctx context.Context, provider AvailabilityProvider, turfID uuid.UUID, date time.Time, openingHour int) ([]TimeSlot, error) {
	booked, err := provider.BookedHours(ctx, turfID, date)

	slots := make([]TimeSlot, 0, SlotCount)
	for i := 1; i <= SlotCount; i++ {
		slot := TimeSlot{
			HourIndex: i,
			Label:     SlotLabel(openingHour, i),
		}
		switch {
		case err != nil:
			slot.Status = StatusUnknown
		case booked[i]:
			slot.Status = StatusBooked
		default:
			slot.Status = StatusAvailable
		}
		slots = append(slots, slot)
	}

	return slots, err
}

// SlotLabel formats the start time of an hour index, e.g. "6:00 AM".
func SlotLabel(openingHour, hourIndex int) string {
	start := time.Date(2000, time.January, 1, openingHour+hourIndex-1, 0, 0, 0, time.UTC)
	return start.Format("3:04 PM")
}

// DateKey normalizes a slot date for provider and storage lookups.
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}
