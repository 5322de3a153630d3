package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "fundline/internal/errors"
	"fundline/internal/service"
)

// RegistrationHandler handles registration endpoints.
type RegistrationHandler struct {
	registrationService service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// StartupRegisterRequest represents a startup registration request.
type StartupRegisterRequest struct {
	Email              string   `json:"email" validate:"required,email"`
	CompanyName        string   `json:"company_name" validate:"required"`
	ProductDescription string   `json:"product_description" validate:"required"`
	ImageURLs          []string `json:"image_urls" validate:"dive,url"`
	PreviousFunding    string   `json:"previous_funding"`
	FullName           string   `json:"full_name"`
}

// InvestorRegisterRequest represents an investor registration request.
type InvestorRegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Company  string `json:"company"`
}

// RegisterStartup godoc
// @Summary Register a startup and upsert its pitch
// @Tags registration
// @Accept json
// @Produce json
// @Param request body StartupRegisterRequest true "Startup registration"
// @Success 200 {object} service.StartupRegistrationResult
// @Failure 422 {object} errors.ErrorResponse
// @Router /api/register/startup [post]
func (h *RegistrationHandler) RegisterStartup(c echo.Context) error {
	var req StartupRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.registrationService.RegisterStartup(c.Request().Context(), service.StartupRegistration{
		Email:              req.Email,
		CompanyName:        req.CompanyName,
		ProductDescription: req.ProductDescription,
		ImageURLs:          req.ImageURLs,
		PreviousFunding:    req.PreviousFunding,
		FullName:           req.FullName,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, result)
}

// RegisterInvestor godoc
// @Summary Register an investor and upsert their profile
// @Tags registration
// @Accept json
// @Produce json
// @Param request body InvestorRegisterRequest true "Investor registration"
// @Success 200 {object} service.RegistrationResult
// @Failure 422 {object} errors.ErrorResponse
// @Router /api/register/investor [post]
func (h *RegistrationHandler) RegisterInvestor(c echo.Context) error {
	var req InvestorRegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.registrationService.RegisterInvestor(c.Request().Context(), service.InvestorRegistration{
		Email:    req.Email,
		FullName: req.FullName,
		Company:  req.Company,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, result)
}
