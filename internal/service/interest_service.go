package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fundline/internal/cache"
	"fundline/internal/errors"
	"fundline/internal/model"
	"fundline/internal/repository"
)

// InterestResult carries the created interest and the recomputed aggregate.
type InterestResult struct {
	InterestID  uuid.UUID       `json:"interest_id"`
	TotalRaised decimal.Decimal `json:"total_raised"`
}

// InterestService records investor commitments against pitches.
type InterestService interface {
	// ExpressInterest inserts an interest and recomputes the pitch's
	// total_raised as the full sum over all of its interests.
	// investorUserID arrives unparsed so a malformed id is rejected only
	// after the pitch lookup, matching the public error precedence.
	ExpressInterest(ctx context.Context, startupID uuid.UUID, investorUserID, message string, amount decimal.Decimal) (*InterestResult, error)
}

type interestService struct {
	pitchRepo    repository.PitchRepository
	userRepo     repository.UserRepository
	interestRepo repository.InterestRepository
	cache        *cache.Client
}

// NewInterestService creates a new interest service.
func NewInterestService(
	pitchRepo repository.PitchRepository,
	userRepo repository.UserRepository,
	interestRepo repository.InterestRepository,
	cache *cache.Client,
) InterestService {
	return &interestService{
		pitchRepo:    pitchRepo,
		userRepo:     userRepo,
		interestRepo: interestRepo,
		cache:        cache,
	}
}

// ExpressInterest validates the pitch and investor, inserts the interest, and
// persists the recomputed aggregate. The insert and the aggregate write are
// not transactional: a failure in between leaves the aggregate stale until
// the next interest recomputes it.
func (s *interestService) ExpressInterest(ctx context.Context, startupID uuid.UUID, investorUserID, message string, amount decimal.Decimal) (*InterestResult, error) {
	if amount.IsNegative() {
		return nil, errors.ErrInvalidAmount
	}

	if _, err := s.pitchRepo.FindByID(ctx, startupID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrStartupNotFound
		}
		return nil, fmt.Errorf("find pitch: %w", err)
	}

	investorID, err := uuid.Parse(investorUserID)
	if err != nil {
		return nil, errors.ErrInvalidID
	}

	investor, err := s.userRepo.FindByID(ctx, investorID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInvalidInvestor
		}
		return nil, fmt.Errorf("find investor: %w", err)
	}
	if investor.Role != model.RoleInvestor {
		return nil, errors.ErrInvalidInvestor
	}

	interest := &model.Interest{
		StartupID:       startupID,
		InvestorUserID:  investorID,
		Message:         message,
		CommittedAmount: amount,
	}
	if err := s.interestRepo.Create(ctx, interest); err != nil {
		return nil, fmt.Errorf("create interest: %w", err)
	}

	interests, err := s.interestRepo.ListByStartup(ctx, startupID)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	total := sumCommitted(interests)

	if err := s.pitchRepo.UpdateTotalRaised(ctx, startupID, total); err != nil {
		return nil, fmt.Errorf("update total raised: %w", err)
	}

	_ = s.cache.Delete(ctx, pitchCacheKey(startupID))

	return &InterestResult{InterestID: interest.ID, TotalRaised: total}, nil
}

// sumCommitted recomputes a pitch's aggregate from scratch over all of its
// interests.
func sumCommitted(interests []model.Interest) decimal.Decimal {
	total := decimal.Zero
	for _, interest := range interests {
		total = total.Add(interest.CommittedAmount)
	}
	return total
}
