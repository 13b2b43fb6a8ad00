package response

import "turfbook/internal/usecase/queries"

type CalendarDayResponse struct {
	Date    int    `json:"date"`
	Weekday string `json:"weekday"`
	Month   string `json:"month"`
	IsToday bool   `json:"isToday"`
}

type SlotResponse struct {
	HourIndex int    `json:"hourIndex"`
	Label     string `json:"label"`
	Status    string `json:"status"`
}

func FromCalendarDays(views []queries.CalendarDayView) []CalendarDayResponse {
	out := make([]CalendarDayResponse, len(views))
	for i, v := range views {
		out[i] = CalendarDayResponse{
			Date:    v.Date,
			Weekday: v.Weekday,
			Month:   v.Month,
			IsToday: v.IsToday,
		}
	}
	return out
}

func FromSlots(views []queries.SlotView) []SlotResponse {
	out := make([]SlotResponse, len(views))
	for i, v := range views {
		out[i] = SlotResponse{
			HourIndex: v.HourIndex,
			Label:     v.Label,
			Status:    v.Status,
		}
	}
	return out
}
