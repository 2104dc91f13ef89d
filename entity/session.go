package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminSession is the console's persistent record of a logged-in admin and the
// upstream bearer token attached to their requests.
type AdminSession struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string         `json:"email" gorm:"type:text;index;not null"`
	UpstreamToken string         `json:"-" gorm:"type:text;not null"`
	ExpiresAt     time.Time      `json:"expires_at" gorm:"index;not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// LoginLockout tracks consecutive failed logins for one client key.
type LoginLockout struct {
	Key            string     `json:"key" gorm:"type:text;primaryKey"`
	FailedAttempts int        `json:"failed_attempts" gorm:"not null;default:0"`
	Locked         bool       `json:"locked" gorm:"default:false"`
	LockedUntil    *time.Time `json:"locked_until,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
