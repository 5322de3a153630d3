package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fundline/internal/model"
)

// PitchRepository defines startup pitch persistence operations.
type PitchRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.StartupPitch, error)
	// ListByStatus returns pitches newest first; an empty status means no filter.
	ListByStatus(ctx context.Context, status string) ([]model.StartupPitch, error)
	// UpsertByOwner replaces the listing fields of the owner's pitch, or
	// creates the pitch if the owner has none. Re-submitting resets status
	// and total_raised along with the rest of the listing.
	UpsertByOwner(ctx context.Context, pitch *model.StartupPitch) (*model.StartupPitch, error)
	// UpdateStatus sets the moderation status and reports how many rows matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error)
	UpdateTotalRaised(ctx context.Context, id uuid.UUID, total decimal.Decimal) error
	CountAll(ctx context.Context) (int64, error)
	SumTotalRaised(ctx context.Context) (decimal.Decimal, error)
}

// pitchUpsertFields are the listing fields overwritten on re-registration.
var pitchUpsertFields = []string{
	"company_name", "product_description", "image_urls",
	"previous_funding", "status", "total_raised",
}

type pitchRepository struct {
	db *gorm.DB
}

// NewPitchRepository creates a new pitch repository.
func NewPitchRepository(db *gorm.DB) PitchRepository {
	return &pitchRepository{db: db}
}

// FindByID finds a pitch by ID.
func (r *pitchRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.StartupPitch, error) {
	var pitch model.StartupPitch
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pitch).Error; err != nil {
		return nil, err
	}
	return &pitch, nil
}

// ListByStatus lists pitches newest first, optionally filtered by status.
func (r *pitchRepository) ListByStatus(ctx context.Context, status string) ([]model.StartupPitch, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var pitches []model.StartupPitch
	if err := q.Find(&pitches).Error; err != nil {
		return nil, err
	}
	return pitches, nil
}

// UpsertByOwner performs the find-or-create keyed on owner_user_id, backed by
// its unique index. A lost insert race routes back to the winner's row.
func (r *pitchRepository) UpsertByOwner(ctx context.Context, pitch *model.StartupPitch) (*model.StartupPitch, error) {
	var existing model.StartupPitch
	err := r.db.WithContext(ctx).Where("owner_user_id = ?", pitch.OwnerUserID).First(&existing).Error
	if err == nil {
		if err := r.db.WithContext(ctx).Model(&existing).Select(pitchUpsertFields).Updates(pitch).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(pitch).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.UpsertByOwner(ctx, pitch)
		}
		return nil, err
	}
	return pitch, nil
}

// UpdateStatus sets the moderation status of a pitch.
func (r *pitchRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.StartupPitch{}).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// UpdateTotalRaised overwrites the cached aggregate for a pitch.
func (r *pitchRepository) UpdateTotalRaised(ctx context.Context, id uuid.UUID, total decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.StartupPitch{}).
		Where("id = ?", id).
		Update("total_raised", total).Error
}

// CountAll counts every pitch regardless of status.
func (r *pitchRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.StartupPitch{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumTotalRaised sums total_raised across every pitch regardless of status.
func (r *pitchRepository) SumTotalRaised(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.StartupPitch{}).
		Select("COALESCE(SUM(total_raised), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
