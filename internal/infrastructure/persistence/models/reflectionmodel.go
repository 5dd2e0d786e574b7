package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/inkfolio/inkfolio/internal/shared/constants"
)

// ReflectionModel is the reflections table. Timestamps are owned by the
// domain, so gorm's automatic UpdatedAt is switched off.
type ReflectionModel struct {
	ID        string         `gorm:"primaryKey;size:36"`
	Title     string         `gorm:"size:200;not null"`
	Excerpt   string         `gorm:"size:500;not null"`
	Content   string         `gorm:"type:longtext;not null"`
	Category  string         `gorm:"size:20;not null;index"`
	Tags      datatypes.JSON `gorm:"type:json"`
	Published bool           `gorm:"not null;index"`
	ReadTime  string         `gorm:"size:32;not null"`
	Date      time.Time      `gorm:"not null;index"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime:false"`
}

func (ReflectionModel) TableName() string {
	return constants.TableReflections
}
