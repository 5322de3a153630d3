package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvestorProfile holds investor-facing details. Each user has at most one
// profile, enforced by the unique index on user_id.
type InvestorProfile struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	FullName  string    `json:"full_name" gorm:"size:255;not null"`
	Company   string    `json:"company,omitempty" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *InvestorProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
