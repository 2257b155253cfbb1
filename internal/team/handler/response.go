package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	teamModel "github.com/festy23/hackteams/internal/team/model"
)

// ErrorResponse represents error response structure matching OpenAPI spec.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorResponse creates error response matching OpenAPI spec.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// serviceError maps team domain errors onto the HTTP error taxonomy.
func serviceError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, teamModel.ErrInvalidTeamName),
		errors.Is(err, teamModel.ErrInvalidMaxMembers),
		errors.Is(err, teamModel.ErrInvalidHackathon):
		errorResponse(c, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrTeamNotFound):
		errorResponse(c, "NOT_FOUND", err.Error(), http.StatusNotFound)
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
