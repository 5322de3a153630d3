package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Registration overwrites the role on every call for the same
// email, so a user's role always reflects the most recent registration.
const (
	RoleStartup  = "startup"
	RoleInvestor = "investor"
	RoleAdmin    = "admin"
)

// User represents any registered party: startup owner, investor, or admin.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	FullName  string    `json:"full_name" gorm:"size:255"`
	Role      string    `json:"role" gorm:"size:50;not null;index"`
	Company   string    `json:"company,omitempty" gorm:"size:255"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
