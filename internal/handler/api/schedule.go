package api

import (
	"net/http"
	"strconv"
	"time"

	resdto "turfbook/internal/handler/dto/response"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleQueries queries.ScheduleQueries
}

func NewScheduleHandler(scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{scheduleQueries: scheduleQueries}
}

// @Summary Booking calendar
// @Description Forward window of selectable days
// @Tags schedule
// @Produce json
// @Param days query int false "Window size in days"
// @Success 200 {array} response.CalendarDayResponse
// @Router /calendar [get]
func (h *ScheduleHandler) Calendar(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid days parameter"), "Invalid days parameter", nil)
			return
		}
		days = parsed
	}

	views := h.scheduleQueries.Calendar(days)
	c.JSON(http.StatusOK, resdto.FromCalendarDays(views))
}

// @Summary Turf slots
// @Description Hourly slots with availability for a turf and date
// @Tags schedule
// @Produce json
// @Param id path string true "Turf ID"
// @Param date query string true "Slot date (YYYY-MM-DD)"
// @Success 200 {array} response.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /turfs/{id}/slots [get]
func (h *ScheduleHandler) Slots(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing date parameter", nil)
		return
	}

	views, err := h.scheduleQueries.Slots(c.Request.Context(), turfID, date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load slots", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(views))
}
