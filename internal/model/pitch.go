package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// API clients expect money fields as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Pitch listing statuses. Moderation can move a pitch in either direction
// any number of times; there is no transition guard.
const (
	PitchStatusPending  = "pending"
	PitchStatusApproved = "approved"
	PitchStatusRejected = "rejected"
)

// StartupPitch is a startup's public fundraising listing. Each owner has at
// most one pitch, enforced by the unique index on owner_user_id.
type StartupPitch struct {
	ID                 uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerUserID        uuid.UUID       `json:"owner_user_id" gorm:"type:char(36);uniqueIndex;not null"`
	CompanyName        string          `json:"company_name" gorm:"size:255;not null"`
	ProductDescription string          `json:"product_description" gorm:"type:text;not null"`
	ImageURLs          []string        `json:"image_urls" gorm:"serializer:json"`
	PreviousFunding    string          `json:"previous_funding,omitempty" gorm:"type:text"`
	Status             string          `json:"status" gorm:"size:50;not null;default:'pending';index"`
	TotalRaised        decimal.Decimal `json:"total_raised" gorm:"type:decimal(15,2);not null;default:0.00"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *StartupPitch) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
