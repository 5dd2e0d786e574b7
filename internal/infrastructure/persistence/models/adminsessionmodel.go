package models

import (
	"time"

	"github.com/inkfolio/inkfolio/internal/shared/constants"
)

// AdminSessionModel stores the SHA-256 hex digest of the session token,
// never the token itself.
type AdminSessionModel struct {
	TokenHash string    `gorm:"primaryKey;size:64"`
	IPAddress string    `gorm:"size:45"`
	UserAgent string    `gorm:"size:512"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

func (AdminSessionModel) TableName() string {
	return constants.TableAdminSessions
}
