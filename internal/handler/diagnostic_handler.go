package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// DiagnosticHandler handles liveness and database connectivity endpoints.
type DiagnosticHandler struct {
	db *gorm.DB
}

// NewDiagnosticHandler creates a new diagnostic handler.
func NewDiagnosticHandler(db *gorm.DB) *DiagnosticHandler {
	return &DiagnosticHandler{db: db}
}

// Root godoc
// @Summary Liveness message
// @Tags diagnostics
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *DiagnosticHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Startup Fundraising Platform API running",
	})
}

// TestDatabase godoc
// @Summary Database connectivity diagnostic
// @Tags diagnostics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (h *DiagnosticHandler) TestDatabase(c echo.Context) error {
	// Failures are reported inside the payload, never as an HTTP error.
	resp := echo.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url_set":  os.Getenv("DATABASE_URL") != "",
		"database_name":     "",
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if h.db == nil {
		return c.JSON(http.StatusOK, resp)
	}

	resp["database"] = "available"
	resp["database_name"] = h.db.Migrator().CurrentDatabase()

	sqlDB, err := h.db.DB()
	if err != nil {
		resp["database"] = fmt.Sprintf("error: %v", err)
		return c.JSON(http.StatusOK, resp)
	}
	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		resp["database"] = fmt.Sprintf("connected but error: %v", err)
		return c.JSON(http.StatusOK, resp)
	}
	resp["connection_status"] = "connected"

	tables, err := h.db.Migrator().GetTables()
	if err != nil {
		resp["database"] = fmt.Sprintf("connected but error: %v", err)
		return c.JSON(http.StatusOK, resp)
	}
	resp["collections"] = tables
	resp["database"] = "connected"

	return c.JSON(http.StatusOK, resp)
}
