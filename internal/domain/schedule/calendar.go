package schedule

import "time"

const DefaultWindowDays = 30

type Weekday string

const (
	Sunday    Weekday = "SUN"
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
)

var weekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// CalendarDay is one selectable day in the booking window.
// Immutable once generated; the window is recomputed on every request.
type CalendarDay struct {
	Date    int
	Weekday Weekday
	Month   string
	IsToday bool
}

// GenerateCalendar produces a forward window of windowDays days starting at
// today. Deterministic given today; a non-positive window yields nil.
func GenerateCalendar(today time.Time, windowDays int) []CalendarDay {
	if windowDays <= 0 {
		return nil
	}

	days := make([]CalendarDay, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		d := today.AddDate(0, 0, i)
		days = append(days, CalendarDay{
			Date:    d.Day(),
			Weekday: weekdays[int(d.Weekday())],
			Month:   d.Format("Jan"),
			IsToday: i == 0,
		})
	}
	return days
}
