package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fundline/internal/cache"
	"fundline/internal/errors"
	"fundline/internal/model"
	"fundline/internal/repository"
)

const pitchCacheTTL = 5 * time.Minute

func pitchCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("pitch:%s", id.String())
}

// DashboardInvestor is the joined user detail behind an interest.
type DashboardInvestor struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Company  string    `json:"company,omitempty"`
	Email    string    `json:"email"`
}

// DashboardInterest is one interest enriched with its investor.
type DashboardInterest struct {
	ID              uuid.UUID         `json:"id"`
	Message         string            `json:"message,omitempty"`
	CommittedAmount decimal.Decimal   `json:"committed_amount"`
	Investor        DashboardInvestor `json:"investor"`
}

// Dashboard is the owner-facing view of a pitch and its interests.
type Dashboard struct {
	Startup             *model.StartupPitch `json:"startup"`
	InterestedInvestors []DashboardInterest `json:"interested_investors"`
	TotalRaised         decimal.Decimal     `json:"total_raised"`
}

// PitchService exposes listing, dashboard, and moderation over pitches.
type PitchService interface {
	// List returns pitches newest first; an empty status means no filter.
	List(ctx context.Context, status string) ([]model.StartupPitch, error)
	Dashboard(ctx context.Context, startupID uuid.UUID) (*Dashboard, error)
	// Moderate sets the pitch status. Either transition can be re-triggered
	// any number of times; the last write wins.
	Moderate(ctx context.Context, startupID uuid.UUID, status string) error
}

type pitchService struct {
	pitchRepo    repository.PitchRepository
	interestRepo repository.InterestRepository
	userRepo     repository.UserRepository
	cache        *cache.Client
	audit        *AuditLogger
}

// NewPitchService creates a new pitch service.
func NewPitchService(
	pitchRepo repository.PitchRepository,
	interestRepo repository.InterestRepository,
	userRepo repository.UserRepository,
	cache *cache.Client,
	audit *AuditLogger,
) PitchService {
	return &pitchService{
		pitchRepo:    pitchRepo,
		interestRepo: interestRepo,
		userRepo:     userRepo,
		cache:        cache,
		audit:        audit,
	}
}

// List lists pitches newest first, optionally filtered by status.
func (s *pitchService) List(ctx context.Context, status string) ([]model.StartupPitch, error) {
	return s.pitchRepo.ListByStatus(ctx, status)
}

// getPitch retrieves a pitch by ID with caching.
func (s *pitchService) getPitch(ctx context.Context, id uuid.UUID) (*model.StartupPitch, error) {
	if data, _ := s.cache.Get(ctx, pitchCacheKey(id)); data != nil {
		var cached model.StartupPitch
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	pitch, err := s.pitchRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrStartupNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(pitch); err == nil {
		_ = s.cache.Set(ctx, pitchCacheKey(id), payload, pitchCacheTTL)
	}

	return pitch, nil
}

// Dashboard joins a pitch with its interests and their investors in memory.
// total_raised is the stored aggregate, not a fresh recomputation.
func (s *pitchService) Dashboard(ctx context.Context, startupID uuid.UUID) (*Dashboard, error) {
	pitch, err := s.getPitch(ctx, startupID)
	if err != nil {
		return nil, err
	}

	interests, err := s.interestRepo.ListByStartup(ctx, startupID)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}

	investorIDs := make([]uuid.UUID, 0, len(interests))
	for _, interest := range interests {
		investorIDs = append(investorIDs, interest.InvestorUserID)
	}
	users, err := s.userRepo.FindByIDs(ctx, investorIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch investors: %w", err)
	}
	usersByID := make(map[uuid.UUID]model.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	enriched := make([]DashboardInterest, 0, len(interests))
	for _, interest := range interests {
		entry := DashboardInterest{
			ID:              interest.ID,
			Message:         interest.Message,
			CommittedAmount: interest.CommittedAmount,
			Investor:        DashboardInvestor{ID: interest.InvestorUserID},
		}
		if u, ok := usersByID[interest.InvestorUserID]; ok {
			entry.Investor.FullName = u.FullName
			entry.Investor.Company = u.Company
			entry.Investor.Email = u.Email
		}
		enriched = append(enriched, entry)
	}

	return &Dashboard{
		Startup:             pitch,
		InterestedInvestors: enriched,
		TotalRaised:         pitch.TotalRaised,
	}, nil
}

// Moderate sets the moderation status of a pitch and audits the action.
func (s *pitchService) Moderate(ctx context.Context, startupID uuid.UUID, status string) error {
	matched, err := s.pitchRepo.UpdateStatus(ctx, startupID, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if matched == 0 {
		return errors.ErrStartupNotFound
	}

	_ = s.cache.Delete(ctx, pitchCacheKey(startupID))
	s.audit.Record(ctx, nil, fmt.Sprintf("%s_startup %s", status, startupID))

	return nil
}
