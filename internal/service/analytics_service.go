package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"fundline/internal/model"
	"fundline/internal/repository"
)

// Overview is the marketplace-wide analytics snapshot. TotalFunds sums
// total_raised across every pitch regardless of moderation status.
type Overview struct {
	Users      int64           `json:"users"`
	Startups   int64           `json:"startups"`
	Investors  int64           `json:"investors"`
	Interests  int64           `json:"interests"`
	TotalFunds decimal.Decimal `json:"total_funds"`
}

// AnalyticsService computes the admin analytics counters.
type AnalyticsService interface {
	Overview(ctx context.Context) (*Overview, error)
}

type analyticsService struct {
	userRepo     repository.UserRepository
	pitchRepo    repository.PitchRepository
	interestRepo repository.InterestRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	userRepo repository.UserRepository,
	pitchRepo repository.PitchRepository,
	interestRepo repository.InterestRepository,
) AnalyticsService {
	return &analyticsService{
		userRepo:     userRepo,
		pitchRepo:    pitchRepo,
		interestRepo: interestRepo,
	}
}

// Overview counts users, pitches, investors, and interests, and sums funds.
func (s *analyticsService) Overview(ctx context.Context) (*Overview, error) {
	users, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	startups, err := s.pitchRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pitches: %w", err)
	}
	investors, err := s.userRepo.CountByRole(ctx, model.RoleInvestor)
	if err != nil {
		return nil, fmt.Errorf("count investors: %w", err)
	}
	interests, err := s.interestRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count interests: %w", err)
	}
	totalFunds, err := s.pitchRepo.SumTotalRaised(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum total raised: %w", err)
	}

	return &Overview{
		Users:      users,
		Startups:   startups,
		Investors:  investors,
		Interests:  interests,
		TotalFunds: totalFunds,
	}, nil
}
