package migration

import (
	"github.com/inkfolio/inkfolio/internal/infrastructure/persistence/models"
)

// Models lists every table for gorm AutoMigrate, used by tests and the
// development shortcut.
func Models() []interface{} {
	return []interface{}{
		&models.ReflectionModel{},
		&models.ContactSubmissionModel{},
		&models.AdminSessionModel{},
	}
}
