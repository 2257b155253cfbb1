// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/hackteams/internal/middleware"
	teamModel "github.com/festy23/hackteams/internal/team/model"
	"github.com/festy23/hackteams/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /teams request.
// @Summary Create a team, caller becomes its leader
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body teamModel.CreateTeamRequest true "Request"
// @Success 201 {object} teamModel.TeamResponse "Created team"
// @Failure 400 {object} ErrorResponse "Bad request (VALIDATION_ERROR)"
// @Failure 409 {object} ErrorResponse "Already in a team for this hackathon"
// @Router /teams [post]
func (h *Handler) Create(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		if serviceError(c, err) {
			return
		}
		h.logger.Errorw("error creating team", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /teams/:id request.
// @Summary Get a team with its active roster
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} teamModel.TeamResponse "Team response"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if serviceError(c, err) {
			return
		}
		h.logger.Errorw("error getting team", "team_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListByHackathon handles GET /hackathons/:id/teams request.
// @Summary List teams of a hackathon with vacancy counts
// @Tags Teams
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} map[string][]teamModel.TeamResponse "Teams wrapped in teams object"
// @Router /hackathons/{id}/teams [get]
func (h *Handler) ListByHackathon(c *gin.Context) {
	resp, err := h.service.ListByHackathon(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Errorw("error listing teams", "hackathon_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"teams": resp,
	})
}

// Join handles POST /teams/:id/join request.
// @Summary Join a team directly
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} teamModel.TeamResponse "Updated team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "ALREADY_MEMBER, TEAM_FULL or ALREADY_IN_HACKATHON_TEAM"
// @Router /teams/{id}/join [post]
func (h *Handler) Join(c *gin.Context) {
	resp, err := h.service.Join(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if serviceError(c, err) {
			return
		}
		h.logger.Errorw("error joining team", "team_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Leave handles POST /teams/:id/leave request.
// @Summary Leave a team (vacates the caller's seat)
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 204 "Seat vacated"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id}/leave [post]
func (h *Handler) Leave(c *gin.Context) {
	err := h.service.Vacate(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if serviceError(c, err) {
			return
		}
		h.logger.Errorw("error leaving team", "team_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /teams/:id request.
// @Summary Delete a team (leader only)
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 204 "Team deleted"
// @Failure 403 {object} ErrorResponse "Caller is not the leader"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /teams/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if serviceError(c, err) {
			return
		}
		h.logger.Errorw("error deleting team", "team_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
