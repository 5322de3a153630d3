package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report statuses. No exposed operation ever transitions a report out of
// "open"; the other values exist for future moderation tooling.
const (
	ReportStatusOpen     = "open"
	ReportStatusInReview = "in_review"
	ReportStatusResolved = "resolved"
)

// Report is a user-submitted complaint about a startup, a user, or anything
// else. The target is free text, not a foreign key.
type Report struct {
	ID             uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ReporterUserID *uuid.UUID `json:"reporter_user_id" gorm:"type:char(36);index"`
	TargetType     string     `json:"target_type" gorm:"size:100;not null"`
	TargetID       string     `json:"target_id,omitempty" gorm:"size:255"`
	Reason         string     `json:"reason" gorm:"type:text;not null"`
	Status         string     `json:"status" gorm:"size:50;not null;default:'open'"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
