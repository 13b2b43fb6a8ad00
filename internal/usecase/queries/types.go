package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type CalendarDayView struct {
	Date    int    `json:"date"`
	Weekday string `json:"weekday"`
	Month   string `json:"month"`
	IsToday bool   `json:"is_today"`
}

type SlotView struct {
	HourIndex int    `json:"hour_index"`
	Label     string `json:"label"`
	Status    string `json:"status"`
}

type TurfView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Sport           string    `json:"sport"`
	Area            string    `json:"area"`
	HourlyRatePaise int64     `json:"hourly_rate_paise"`
}

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	TurfID         uuid.UUID `json:"turf_id"`
	TurfName       string    `json:"turf_name"`
	SlotDate       string    `json:"slot_date"`
	StartHour      int       `json:"start_hour"`
	DurationHours  float64   `json:"duration_hours"`
	Method         string    `json:"method"`
	SlotPricePaise int64     `json:"slot_price_paise"`
	PaidPaise      int64     `json:"paid_paise"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type PlayerView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

type SquadView struct {
	ID            uuid.UUID    `json:"id"`
	EventID       string       `json:"event_id"`
	EventName     string       `json:"event_name"`
	Sport         string       `json:"sport"`
	TeamName      string       `json:"team_name"`
	TargetSize    int          `json:"target_size"`
	PlayersNeeded int          `json:"players_needed"`
	IsComplete    bool         `json:"is_complete"`
	Players       []PlayerView `json:"players"`
}
