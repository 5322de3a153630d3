package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fundline/internal/model"
	"fundline/internal/repository"
)

// ReportInput is the input for filing a report. ReporterUserID is optional
// and TargetID is free text; neither is checked against existing rows.
type ReportInput struct {
	ReporterUserID *uuid.UUID
	TargetType     string
	TargetID       string
	Reason         string
}

// ReportService files and lists moderation reports.
type ReportService interface {
	Create(ctx context.Context, in ReportInput) (*model.Report, error)
	// List returns every report newest first. Reports never leave the open
	// status; no transition is exposed.
	List(ctx context.Context) ([]model.Report, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service.
func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// Create files a report with the open status.
func (s *reportService) Create(ctx context.Context, in ReportInput) (*model.Report, error) {
	report := &model.Report{
		ReporterUserID: in.ReporterUserID,
		TargetType:     in.TargetType,
		TargetID:       in.TargetID,
		Reason:         in.Reason,
		Status:         model.ReportStatusOpen,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}

// List lists every report newest first.
func (s *reportService) List(ctx context.Context) ([]model.Report, error) {
	return s.reportRepo.ListAll(ctx)
}
