// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/hackteams/internal/cleanup"
	"github.com/festy23/hackteams/internal/middleware"
	"github.com/festy23/hackteams/internal/user/model"
	"github.com/festy23/hackteams/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	cleanup cleanup.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, cln cleanup.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, cleanup: cln, logger: logger}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(code, message string) ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		c.JSON(http.StatusNotFound, errorResponse("NOT_FOUND", err.Error()))
	case errors.Is(err, model.ErrInvalidUserID), errors.Is(err, model.ErrInvalidDisplayName):
		c.JSON(http.StatusBadRequest, errorResponse("VALIDATION_ERROR", err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "internal server error"))
	}
}

// Upsert handles POST /users request.
// @Summary Create or update the caller's profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.UpsertProfileRequest true "Profile"
// @Success 200 {object} model.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Router /users [post]
func (h *Handler) Upsert(c *gin.Context) {
	var req model.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("VALIDATION_ERROR", err.Error()))
		return
	}

	resp, err := h.service.UpsertProfile(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /users/:id request.
// @Summary Get a profile by user id
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.ProfileResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteMe handles DELETE /users/me request. Beyond removing the
// profile it vacates the caller's seat in every team they belong to.
// @Summary Delete the caller's account
// @Tags Users
// @Produce json
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /users/me [delete]
func (h *Handler) DeleteMe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := h.cleanup.ReconcileUserDeletion(c.Request.Context(), userID); err != nil {
		h.logger.Errorw("account deletion failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "internal server error"))
		return
	}
	c.Status(http.StatusNoContent)
}
