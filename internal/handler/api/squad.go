package api

import (
	"errors"
	"net/http"

	reqdto "turfbook/internal/handler/dto/request"
	resdto "turfbook/internal/handler/dto/response"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase/commands"
	"turfbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SquadHandler struct {
	squadCommands commands.SquadCommands
	squadQueries  queries.SquadQueries
}

func NewSquadHandler(squadCommands commands.SquadCommands, squadQueries queries.SquadQueries) *SquadHandler {
	return &SquadHandler{
		squadCommands: squadCommands,
		squadQueries:  squadQueries,
	}
}

// @Summary Create squad
// @Description Start a roster for an event; the captain holds slot 0
// @Tags squads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateSquadRequest true "Squad request"
// @Success 201 {object} response.SquadResponse
// @Failure 400 {object} map[string]string
// @Router /squads [post]
func (h *SquadHandler) Create(c *gin.Context) {
	var req reqdto.CreateSquadRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.squadCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeSquadError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSquadView(view))
}

// @Summary Get squad
// @Tags squads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Squad ID"
// @Success 200 {object} response.SquadResponse
// @Failure 404 {object} map[string]string
// @Router /squads/{id} [get]
func (h *SquadHandler) Get(c *gin.Context) {
	squadID, ok := h.parseSquadID(c)
	if !ok {
		return
	}

	view, err := h.squadQueries.GetByID(c.Request.Context(), squadID)
	if err != nil {
		h.writeSquadError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSquadView(view))
}

// @Summary Add roster slot
// @Description Append an unnamed player; rejected when the roster is full
// @Tags squads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Squad ID"
// @Success 200 {object} response.SquadResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /squads/{id}/players [post]
func (h *SquadHandler) AddPlayer(c *gin.Context) {
	squadID, ok := h.parseSquadID(c)
	if !ok {
		return
	}

	view, err := h.squadCommands.AddPlayer(c.Request.Context(), squadID)
	if err != nil {
		h.writeSquadError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSquadView(view))
}

// @Summary Remove player
// @Description Remove a roster member; the captain is never removable
// @Tags squads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Squad ID"
// @Param playerId path string true "Player ID"
// @Success 200 {object} response.SquadResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /squads/{id}/players/{playerId} [delete]
func (h *SquadHandler) RemovePlayer(c *gin.Context) {
	squadID, ok := h.parseSquadID(c)
	if !ok {
		return
	}
	playerID, err := uuid.Parse(c.Param("playerId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid player id", nil)
		return
	}

	view, err := h.squadCommands.RemovePlayer(c.Request.Context(), squadID, playerID)
	if err != nil {
		h.writeSquadError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSquadView(view))
}

// @Summary Rename player
// @Tags squads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Squad ID"
// @Param playerId path string true "Player ID"
// @Param request body request.RenamePlayerRequest true "New name"
// @Success 200 {object} response.SquadResponse
// @Failure 404 {object} map[string]string
// @Router /squads/{id}/players/{playerId} [patch]
func (h *SquadHandler) RenamePlayer(c *gin.Context) {
	squadID, ok := h.parseSquadID(c)
	if !ok {
		return
	}
	playerID, err := uuid.Parse(c.Param("playerId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid player id", nil)
		return
	}

	var req reqdto.RenamePlayerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.squadCommands.RenamePlayer(c.Request.Context(), squadID, playerID, *req.Name)
	if err != nil {
		h.writeSquadError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSquadView(view))
}

// @Summary Resize squad
// @Description Change the target size; the roster is never truncated
// @Tags squads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Squad ID"
// @Param request body request.ResizeSquadRequest true "New target size"
// @Success 200 {object} response.SquadResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /squads/{id} [patch]
func (h *SquadHandler) Resize(c *gin.Context) {
	squadID, ok := h.parseSquadID(c)
	if !ok {
		return
	}

	var req reqdto.ResizeSquadRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.squadCommands.Resize(c.Request.Context(), squadID, req.TargetSize)
	if err != nil {
		h.writeSquadError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSquadView(view))
}

// @Summary Request players
// @Description Hand an incomplete roster off to matchmaking
// @Tags squads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Squad ID"
// @Success 202 {object} response.MatchmakingResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /squads/{id}/matchmaking [post]
func (h *SquadHandler) RequestPlayers(c *gin.Context) {
	squadID, ok := h.parseSquadID(c)
	if !ok {
		return
	}

	req, err := h.squadCommands.RequestPlayers(c.Request.Context(), squadID)
	if err != nil {
		h.writeSquadError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromMatchmakingRequest(req))
}

// @Summary Discard squad
// @Tags squads
// @Security BearerAuth
// @Param id path string true "Squad ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /squads/{id} [delete]
func (h *SquadHandler) Discard(c *gin.Context) {
	squadID, ok := h.parseSquadID(c)
	if !ok {
		return
	}

	if err := h.squadCommands.Discard(c.Request.Context(), squadID); err != nil {
		h.writeSquadError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SquadHandler) parseSquadID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *SquadHandler) writeSquadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSquadNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Squad not found", nil)
	case errors.Is(err, errs.ErrPlayerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Player not found", nil)
	case errors.Is(err, errs.ErrRosterFull):
		httperr.AbortWithError(c, http.StatusConflict, err, "Roster is already full", nil)
	case errors.Is(err, errs.ErrCannotRemoveCaptain):
		httperr.AbortWithError(c, http.StatusConflict, err, "Captain cannot be removed", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
