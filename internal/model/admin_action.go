package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminAction is an audit-log entry for moderation and bootstrap calls.
// AdminUserID is nil when the caller supplied no identity; the platform has
// no credential layer to recover one from.
type AdminAction struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	AdminUserID *uuid.UUID `json:"admin_user_id" gorm:"type:char(36);index"`
	Action      string     `json:"action" gorm:"size:255;not null"`
	At          time.Time  `json:"at" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (a *AdminAction) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
