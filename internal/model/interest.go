package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Interest records an investor's commitment against a specific pitch.
type Interest struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	StartupID       uuid.UUID       `json:"startup_id" gorm:"type:char(36);not null;index"`
	InvestorUserID  uuid.UUID       `json:"investor_user_id" gorm:"type:char(36);not null;index"`
	Message         string          `json:"message,omitempty" gorm:"type:text"`
	CommittedAmount decimal.Decimal `json:"committed_amount" gorm:"type:decimal(15,2);not null;default:0.00"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Interest) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
