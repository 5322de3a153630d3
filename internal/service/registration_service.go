package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fundline/internal/cache"
	"fundline/internal/model"
	"fundline/internal/repository"
)

// StartupRegistration is the input for registering a startup and its pitch.
type StartupRegistration struct {
	Email              string
	CompanyName        string
	ProductDescription string
	ImageURLs          []string
	PreviousFunding    string
	FullName           string
}

// InvestorRegistration is the input for registering an investor.
type InvestorRegistration struct {
	Email    string
	FullName string
	Company  string
}

// RegistrationResult carries the upserted user identity.
type RegistrationResult struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

// StartupRegistrationResult additionally carries the upserted pitch identity.
type StartupRegistrationResult struct {
	UserID    uuid.UUID `json:"user_id"`
	StartupID uuid.UUID `json:"startup_id"`
	Role      string    `json:"role"`
}

// RegistrationService handles the upsert-by-natural-key registration flows.
// Every call overwrites the role of an existing email, so re-registering an
// admin as a startup owner demotes them; that is the contract, not a bug.
type RegistrationService interface {
	RegisterStartup(ctx context.Context, in StartupRegistration) (*StartupRegistrationResult, error)
	RegisterInvestor(ctx context.Context, in InvestorRegistration) (*RegistrationResult, error)
	BootstrapAdmin(ctx context.Context, email, fullName string) (*RegistrationResult, error)
}

type registrationService struct {
	userRepo    repository.UserRepository
	pitchRepo   repository.PitchRepository
	profileRepo repository.InvestorProfileRepository
	cache       *cache.Client
	audit       *AuditLogger
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(
	userRepo repository.UserRepository,
	pitchRepo repository.PitchRepository,
	profileRepo repository.InvestorProfileRepository,
	cache *cache.Client,
	audit *AuditLogger,
) RegistrationService {
	return &registrationService{
		userRepo:    userRepo,
		pitchRepo:   pitchRepo,
		profileRepo: profileRepo,
		cache:       cache,
		audit:       audit,
	}
}

// RegisterStartup upserts the user by email and the pitch by owner. A
// re-submitted pitch has its listing fields, status, and total_raised reset.
func (s *registrationService) RegisterStartup(ctx context.Context, in StartupRegistration) (*StartupRegistrationResult, error) {
	user, err := s.userRepo.UpsertByEmail(ctx, &model.User{
		Email:    in.Email,
		FullName: in.FullName,
		Role:     model.RoleStartup,
		IsActive: true,
	}, "role", "full_name")
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	pitch, err := s.pitchRepo.UpsertByOwner(ctx, &model.StartupPitch{
		OwnerUserID:        user.ID,
		CompanyName:        in.CompanyName,
		ProductDescription: in.ProductDescription,
		ImageURLs:          in.ImageURLs,
		PreviousFunding:    in.PreviousFunding,
		Status:             model.PitchStatusPending,
		TotalRaised:        decimal.Zero,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert pitch: %w", err)
	}

	_ = s.cache.Delete(ctx, pitchCacheKey(pitch.ID))

	return &StartupRegistrationResult{
		UserID:    user.ID,
		StartupID: pitch.ID,
		Role:      model.RoleStartup,
	}, nil
}

// RegisterInvestor upserts the user by email and the profile by user id.
func (s *registrationService) RegisterInvestor(ctx context.Context, in InvestorRegistration) (*RegistrationResult, error) {
	user, err := s.userRepo.UpsertByEmail(ctx, &model.User{
		Email:    in.Email,
		FullName: in.FullName,
		Company:  in.Company,
		Role:     model.RoleInvestor,
		IsActive: true,
	}, "role", "full_name", "company")
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	if _, err := s.profileRepo.UpsertByUserID(ctx, &model.InvestorProfile{
		UserID:   user.ID,
		FullName: in.FullName,
		Company:  in.Company,
	}); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return &RegistrationResult{UserID: user.ID, Role: model.RoleInvestor}, nil
}

// BootstrapAdmin upserts a user with the admin role.
func (s *registrationService) BootstrapAdmin(ctx context.Context, email, fullName string) (*RegistrationResult, error) {
	user, err := s.userRepo.UpsertByEmail(ctx, &model.User{
		Email:    email,
		FullName: fullName,
		Role:     model.RoleAdmin,
		IsActive: true,
	}, "role", "full_name")
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	s.audit.Record(ctx, &user.ID, "bootstrap_admin")

	return &RegistrationResult{UserID: user.ID, Role: model.RoleAdmin}, nil
}
