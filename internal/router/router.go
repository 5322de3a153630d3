package router

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"fundline/internal/auth"
	apperrors "fundline/internal/errors"
	"fundline/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authorizer auth.Authorizer,
	diagnosticHandler *handler.DiagnosticHandler,
	registrationHandler *handler.RegistrationHandler,
	pitchHandler *handler.PitchHandler,
	reportHandler *handler.ReportHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Fully open CORS, credentials included.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:                             []string{"*"},
		AllowMethods:                             []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:                             []string{"*"},
		AllowCredentials:                         true,
		UnsafeWildcardOriginWithAllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = httpErrorHandler

	e.GET("/", diagnosticHandler.Root)
	e.GET("/test", diagnosticHandler.TestDatabase)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.POST("/register/startup", registrationHandler.RegisterStartup)
	api.POST("/register/investor", registrationHandler.RegisterInvestor)

	api.GET("/startups", pitchHandler.ListStartups)
	api.POST("/startups/:startup_id/interest", pitchHandler.ExpressInterest)
	api.GET("/startups/:startup_id/dashboard", pitchHandler.Dashboard)

	api.POST("/reports", reportHandler.CreateReport)

	admin := api.Group("/admin", auth.Middleware(authorizer, "admin"))
	admin.GET("/reports", reportHandler.ListReports)
	admin.POST("/bootstrap", adminHandler.Bootstrap)
	admin.POST("/startups/:startup_id/approve", adminHandler.ApproveStartup)
	admin.POST("/startups/:startup_id/reject", adminHandler.RejectStartup)
	admin.GET("/analytics", adminHandler.Analytics)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// httpErrorHandler renders every error as {"detail": "..."}.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := "internal server error"

	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		status = he.Code
		switch m := he.Message.(type) {
		case string:
			detail = m
		default:
			detail = fmt.Sprintf("%v", m)
		}
	} else {
		httpErr := apperrors.MapErrorToHTTP(err)
		status = httpErr.StatusCode
		detail = httpErr.Detail
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, apperrors.ErrorResponse{Detail: detail})
}
