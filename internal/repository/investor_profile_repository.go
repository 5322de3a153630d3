package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fundline/internal/model"
)

// profileUpsertFields are overwritten on investor re-registration.
var profileUpsertFields = []string{"full_name", "company"}

// InvestorProfileRepository defines investor profile persistence operations.
type InvestorProfileRepository interface {
	// UpsertByUserID replaces the profile for the given user, or creates one
	// if the user has none.
	UpsertByUserID(ctx context.Context, profile *model.InvestorProfile) (*model.InvestorProfile, error)
}

type investorProfileRepository struct {
	db *gorm.DB
}

// NewInvestorProfileRepository creates a new investor profile repository.
func NewInvestorProfileRepository(db *gorm.DB) InvestorProfileRepository {
	return &investorProfileRepository{db: db}
}

// UpsertByUserID performs the find-or-create keyed on user_id, backed by its
// unique index. A lost insert race routes back to the winner's row.
func (r *investorProfileRepository) UpsertByUserID(ctx context.Context, profile *model.InvestorProfile) (*model.InvestorProfile, error) {
	var existing model.InvestorProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == nil {
		if err := r.db.WithContext(ctx).Model(&existing).Select(profileUpsertFields).Updates(profile).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.UpsertByUserID(ctx, profile)
		}
		return nil, err
	}
	return profile, nil
}
