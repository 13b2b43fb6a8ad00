package api

import (
	"errors"
	"net/http"

	resdto "turfbook/internal/handler/dto/response"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TurfHandler struct {
	turfQueries queries.TurfQueries
}

func NewTurfHandler(turfQueries queries.TurfQueries) *TurfHandler {
	return &TurfHandler{turfQueries: turfQueries}
}

// @Summary List turfs
// @Description List all bookable turfs
// @Tags turfs
// @Produce json
// @Success 200 {array} response.TurfResponse
// @Router /turfs [get]
func (h *TurfHandler) List(c *gin.Context) {
	views, err := h.turfQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load turfs", nil)
		return
	}

	response := make([]resdto.TurfResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromTurfView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get turf
// @Description Get a turf by ID
// @Tags turfs
// @Produce json
// @Param id path string true "Turf ID"
// @Success 200 {object} response.TurfResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /turfs/{id} [get]
func (h *TurfHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.turfQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrTurfNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Turf not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load turf", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTurfView(view))
}
