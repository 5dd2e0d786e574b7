package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/inkfolio/inkfolio/internal/shared/constants"
)

type ContactSubmissionModel struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"size:100;not null"`
	Email       string    `gorm:"size:255;not null"`
	Reason      string    `gorm:"size:20;not null"`
	Message     string    `gorm:"type:text;not null"`
	Status      string    `gorm:"size:20;not null;index"`
	SubmittedAt time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (ContactSubmissionModel) TableName() string {
	return constants.TableContactSubmissions
}

func (m *ContactSubmissionModel) BeforeCreate(_ *gorm.DB) error {
	if m.Status == "" {
		m.Status = "new"
	}
	return nil
}
