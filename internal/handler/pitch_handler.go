package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "fundline/internal/errors"
	"fundline/internal/model"
	"fundline/internal/service"
)

// PitchHandler handles public pitch endpoints.
type PitchHandler struct {
	pitchService    service.PitchService
	interestService service.InterestService
}

// NewPitchHandler creates a new pitch handler.
func NewPitchHandler(pitchService service.PitchService, interestService service.InterestService) *PitchHandler {
	return &PitchHandler{
		pitchService:    pitchService,
		interestService: interestService,
	}
}

// PitchListResponse wraps a pitch listing.
type PitchListResponse struct {
	Items []model.StartupPitch `json:"items"`
}

// InterestCreateRequest represents an investor's expression of interest.
type InterestCreateRequest struct {
	InvestorUserID  string  `json:"investor_user_id" validate:"required"`
	Message         string  `json:"message"`
	CommittedAmount float64 `json:"committed_amount" validate:"gte=0"`
}

// ListStartups godoc
// @Summary List startup pitches
// @Tags startups
// @Produce json
// @Param status query string false "Status filter (default approved; empty for all)"
// @Success 200 {object} PitchListResponse
// @Router /api/startups [get]
func (h *PitchHandler) ListStartups(c echo.Context) error {
	// An absent parameter defaults to approved; an explicitly empty one
	// disables the filter.
	status := model.PitchStatusApproved
	if values, ok := c.QueryParams()["status"]; ok && len(values) > 0 {
		status = values[0]
	}

	pitches, err := h.pitchService.List(c.Request().Context(), status)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	if pitches == nil {
		pitches = []model.StartupPitch{}
	}
	return c.JSON(http.StatusOK, PitchListResponse{Items: pitches})
}

// ExpressInterest godoc
// @Summary Express investor interest in a pitch
// @Tags startups
// @Accept json
// @Produce json
// @Param startup_id path string true "Startup pitch ID"
// @Param request body InterestCreateRequest true "Interest"
// @Success 200 {object} service.InterestResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /api/startups/{startup_id}/interest [post]
func (h *PitchHandler) ExpressInterest(c echo.Context) error {
	var req InterestCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	startupID, err := uuid.Parse(c.Param("startup_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidID.Error())
	}

	result, err := h.interestService.ExpressInterest(
		c.Request().Context(),
		startupID,
		req.InvestorUserID,
		req.Message,
		decimal.NewFromFloat(req.CommittedAmount),
	)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, result)
}

// Dashboard godoc
// @Summary Owner dashboard for a pitch
// @Tags startups
// @Produce json
// @Param startup_id path string true "Startup pitch ID"
// @Success 200 {object} service.Dashboard
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/startups/{startup_id}/dashboard [get]
func (h *PitchHandler) Dashboard(c echo.Context) error {
	startupID, err := uuid.Parse(c.Param("startup_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidID.Error())
	}

	dashboard, err := h.pitchService.Dashboard(c.Request().Context(), startupID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, dashboard)
}
