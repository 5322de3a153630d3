package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fundline/internal/model"
)

// InterestRepository defines interest persistence operations.
type InterestRepository interface {
	Create(ctx context.Context, interest *model.Interest) error
	// ListByStartup returns a pitch's interests newest first.
	ListByStartup(ctx context.Context, startupID uuid.UUID) ([]model.Interest, error)
	CountAll(ctx context.Context) (int64, error)
}

type interestRepository struct {
	db *gorm.DB
}

// NewInterestRepository creates a new interest repository.
func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &interestRepository{db: db}
}

// Create inserts a new interest.
func (r *interestRepository) Create(ctx context.Context, interest *model.Interest) error {
	return r.db.WithContext(ctx).Create(interest).Error
}

// ListByStartup lists a pitch's interests newest first.
func (r *interestRepository) ListByStartup(ctx context.Context, startupID uuid.UUID) ([]model.Interest, error) {
	var interests []model.Interest
	err := r.db.WithContext(ctx).
		Where("startup_id = ?", startupID).
		Order("created_at DESC").
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

// CountAll counts every interest.
func (r *interestRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Interest{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
