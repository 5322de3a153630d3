package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "fundline/internal/errors"
	"fundline/internal/model"
	"fundline/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportCreateRequest represents a filed report.
type ReportCreateRequest struct {
	ReporterUserID string `json:"reporter_user_id"`
	TargetType     string `json:"target_type" validate:"required"`
	TargetID       string `json:"target_id"`
	Reason         string `json:"reason" validate:"required"`
}

// ReportCreateResponse carries the new report's identifier.
type ReportCreateResponse struct {
	ReportID uuid.UUID `json:"report_id"`
}

// ReportListResponse wraps a report listing.
type ReportListResponse struct {
	Items []model.Report `json:"items"`
}

// CreateReport godoc
// @Summary File a report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body ReportCreateRequest true "Report"
// @Success 200 {object} ReportCreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /api/reports [post]
func (h *ReportHandler) CreateReport(c echo.Context) error {
	var req ReportCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	var reporterID *uuid.UUID
	if req.ReporterUserID != "" {
		parsed, err := uuid.Parse(req.ReporterUserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidID.Error())
		}
		reporterID = &parsed
	}

	report, err := h.reportService.Create(c.Request().Context(), service.ReportInput{
		ReporterUserID: reporterID,
		TargetType:     req.TargetType,
		TargetID:       req.TargetID,
		Reason:         req.Reason,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	return c.JSON(http.StatusOK, ReportCreateResponse{ReportID: report.ID})
}

// ListReports godoc
// @Summary List all reports
// @Tags reports
// @Produce json
// @Success 200 {object} ReportListResponse
// @Router /api/admin/reports [get]
func (h *ReportHandler) ListReports(c echo.Context) error {
	reports, err := h.reportService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Detail)
	}
	if reports == nil {
		reports = []model.Report{}
	}
	return c.JSON(http.StatusOK, ReportListResponse{Items: reports})
}
