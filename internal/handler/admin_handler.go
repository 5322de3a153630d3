package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "fundline/internal/errors"
	"fundline/internal/model"
	"fundline/internal/service"
)

// AdminHandler handles admin bootstrap, moderation, and analytics endpoints.
type AdminHandler struct {
	registrationService service.RegistrationService
	pitchService        service.PitchService
	analyticsService    service.AnalyticsService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	registrationService service.RegistrationService,
	pitchService service.PitchService,
	analyticsService service.AnalyticsService,
) *AdminHandler {
	return &AdminHandler{
		registrationService: registrationService,
		pitchService:        pitchService,
		analyticsService:    analyticsService,
	}
}

// AdminBootstrapRequest represents an admin bootstrap request.
type AdminBootstrapRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
}

// ModerationResponse carries the status a pitch was moved to.
type ModerationResponse struct {
	Status string `json:"status"`
}

// Bootstrap godoc
// @Summary Upsert a user with the admin role
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminBootstrapRequest true "Admin bootstrap"
// @Success 200 {object} service.RegistrationResult
// @Failure 422 {object} errors.ErrorResponse
// @Router /api/admin/bootstrap [post]
func (h *AdminHandler) Bootstrap(c echo.Context) error {
	var req AdminBootstrapRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.registrationService.BootstrapAdmin(c.Request().Context(), req.Email, req.FullName)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, result)
}

// ApproveStartup godoc
// @Summary Approve a startup pitch
// @Tags admin
// @Produce json
// @Param startup_id path string true "Startup pitch ID"
// @Success 200 {object} ModerationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/startups/{startup_id}/approve [post]
func (h *AdminHandler) ApproveStartup(c echo.Context) error {
	return h.moderate(c, model.PitchStatusApproved)
}

// RejectStartup godoc
// @Summary Reject a startup pitch
// @Tags admin
// @Produce json
// @Param startup_id path string true "Startup pitch ID"
// @Success 200 {object} ModerationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/admin/startups/{startup_id}/reject [post]
func (h *AdminHandler) RejectStartup(c echo.Context) error {
	return h.moderate(c, model.PitchStatusRejected)
}

func (h *AdminHandler) moderate(c echo.Context, status string) error {
	startupID, err := uuid.Parse(c.Param("startup_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidID.Error())
	}

	if err := h.pitchService.Moderate(c.Request().Context(), startupID, status); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, ModerationResponse{Status: status})
}

// Analytics godoc
// @Summary Marketplace analytics counters
// @Tags admin
// @Produce json
// @Success 200 {object} service.Overview
// @Router /api/admin/analytics [get]
func (h *AdminHandler) Analytics(c echo.Context) error {
	overview, err := h.analyticsService.Overview(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, overview)
}
