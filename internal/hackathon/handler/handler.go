// Package handler provides HTTP handlers for hackathon endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/hackteams/internal/hackathon/model"
	"github.com/festy23/hackteams/internal/hackathon/service"
)

// Handler handles HTTP requests for hackathon endpoints.
type Handler struct {
	service service.Service
}

// New creates a new hackathon handler instance.
func New(svc service.Service) *Handler {
	return &Handler{service: svc}
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
	case errors.Is(err, model.ErrHackathonNotFound):
		c.JSON(http.StatusNotFound, errorResponse("NOT_FOUND", err.Error()))
	case errors.Is(err, model.ErrInvalidName),
		errors.Is(err, model.ErrInvalidDates),
		errors.Is(err, model.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, errorResponse("VALIDATION_ERROR", err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "internal server error"))
	}
}

// Create handles POST /hackathons request.
// @Summary Create a hackathon
// @Tags Hackathons
// @Accept json
// @Produce json
// @Param request body model.CreateHackathonRequest true "Hackathon"
// @Success 201 {object} model.HackathonResponse
// @Failure 400 {object} ErrorResponse
// @Router /hackathons [post]
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("VALIDATION_ERROR", err.Error()))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /hackathons/:id request.
// @Summary Get a hackathon by id
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} model.HackathonResponse
// @Failure 404 {object} ErrorResponse
// @Router /hackathons/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List handles GET /hackathons request.
// @Summary List hackathons
// @Tags Hackathons
// @Produce json
// @Param filter query string false "all, upcoming, ongoing or past"
// @Success 200 {object} model.ListResponse
// @Failure 400 {object} ErrorResponse
// @Router /hackathons [get]
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), model.Filter(c.Query("filter")))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
