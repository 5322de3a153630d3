package repository

import (
	"context"

	"gorm.io/gorm"

	"fundline/internal/model"
)

// AdminActionRepository defines audit-log persistence operations.
type AdminActionRepository interface {
	Create(ctx context.Context, action *model.AdminAction) error
	CreateBatch(ctx context.Context, actions []model.AdminAction) error
}

type adminActionRepository struct {
	db *gorm.DB
}

// NewAdminActionRepository creates a new admin action repository.
func NewAdminActionRepository(db *gorm.DB) AdminActionRepository {
	return &adminActionRepository{db: db}
}

// Create inserts a single audit entry.
func (r *adminActionRepository) Create(ctx context.Context, action *model.AdminAction) error {
	return r.db.WithContext(ctx).Create(action).Error
}

// CreateBatch inserts a batch of audit entries.
func (r *adminActionRepository) CreateBatch(ctx context.Context, actions []model.AdminAction) error {
	if len(actions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&actions).Error
}
