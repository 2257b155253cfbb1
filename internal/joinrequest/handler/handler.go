// Package handler provides HTTP handlers for join request endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/hackteams/internal/joinrequest/model"
	"github.com/festy23/hackteams/internal/joinrequest/service"
	"github.com/festy23/hackteams/internal/middleware"
	teamModel "github.com/festy23/hackteams/internal/team/model"
)

// Handler handles HTTP requests for join request endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new join request handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ErrorResponse represents error response structure matching OpenAPI spec.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// serviceError maps join request and team domain errors onto the HTTP
// error taxonomy.
func serviceError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, model.ErrRequestNotFound),
		errors.Is(err, teamModel.ErrTeamNotFound):
		errorResponse(c, "NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrDuplicatePending):
		errorResponse(c, "DUPLICATE_PENDING", err.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrRequestNotPending):
		errorResponse(c, "REQUEST_NOT_PENDING", err.Error(), http.StatusConflict)
	case errors.Is(err, teamModel.ErrAlreadyMember):
		errorResponse(c, "ALREADY_MEMBER", err.Error(), http.StatusConflict)
	case errors.Is(err, teamModel.ErrTeamFull):
		errorResponse(c, "TEAM_FULL", err.Error(), http.StatusConflict)
	case errors.Is(err, teamModel.ErrAlreadyInHackathonTeam):
		errorResponse(c, "ALREADY_IN_HACKATHON_TEAM", err.Error(), http.StatusConflict)
	case errors.Is(err, teamModel.ErrNotLeader):
		errorResponse(c, "NOT_LEADER", err.Error(), http.StatusForbidden)
	case errors.Is(err, teamModel.ErrVersionConflict):
		errorResponse(c, "CONFLICT", "concurrent update, please retry", http.StatusConflict)
	default:
		return false
	}
	return true
}

// Submit handles POST /teams/:id/requests request.
// @Summary Submit a request to join a team
// @Tags JoinRequests
// @Produce json
// @Param id path string true "Team ID"
// @Success 201 {object} model.JoinRequest "Pending request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "DUPLICATE_PENDING or ALREADY_MEMBER"
// @Router /teams/{id}/requests [post]
func (h *Handler) Submit(c *gin.Context) {
	request, err := h.service.Submit(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if serviceError(c, err) {
			return
		}
		h.logger.Errorw("error submitting join request", "team_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListPending handles GET /teams/:id/requests request.
// @Summary List a team's pending join requests (leader only)
// @Tags JoinRequests
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} map[string][]model.JoinRequest "Requests wrapped in requests object"
// @Failure 403 {object} ErrorResponse "Caller is not the leader"
// @Router /teams/{id}/requests [get]
func (h *Handler) ListPending(c *gin.Context) {
	requests, err := h.service.ListPending(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if serviceError(c, err) {
			return
		}
		h.logger.Errorw("error listing join requests", "team_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"requests": requests,
	})
}

// Accept handles POST /requests/:id/accept request.
// @Summary Accept a join request (leader only)
// @Tags JoinRequests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} teamModel.TeamResponse "Updated team"
// @Failure 403 {object} ErrorResponse "Caller is not the leader"
// @Failure 409 {object} ErrorResponse "TEAM_FULL or REQUEST_NOT_PENDING"
// @Router /requests/{id}/accept [post]
func (h *Handler) Accept(c *gin.Context) {
	resp, err := h.service.Accept(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if serviceError(c, err) {
			return
		}
		h.logger.Errorw("error accepting join request", "request_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Reject handles POST /requests/:id/reject request.
// @Summary Reject a join request (leader only)
// @Tags JoinRequests
// @Produce json
// @Param id path string true "Request ID"
// @Success 204 "Request rejected"
// @Failure 403 {object} ErrorResponse "Caller is not the leader"
// @Failure 409 {object} ErrorResponse "REQUEST_NOT_PENDING"
// @Router /requests/{id}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	err := h.service.Reject(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		if serviceError(c, err) {
			return
		}
		h.logger.Errorw("error rejecting join request", "request_id", c.Param("id"), "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
