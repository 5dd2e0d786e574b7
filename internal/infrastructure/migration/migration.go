package migration

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"

	"gorm.io/gorm"

	"github.com/inkfolio/inkfolio/internal/shared/config"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

const (
	ToolGoose         = "goose"
	ToolGolangMigrate = "golang-migrate"
)

//go:embed scripts
var scripts embed.FS

// ScriptsDir is where `migrate create` writes new files, relative to the
// repository root.
const ScriptsDir = "internal/infrastructure/migration/scripts"

// Strategy runs versioned migrations for one tool and dialect. Each tool keeps
// its own version table, so a database should stay with the tool it started
// with.
type Strategy interface {
	Name() string
	Up(ctx context.Context) error
	Down(ctx context.Context, steps int) error
	Version(ctx context.Context) (int64, error)
	Status(ctx context.Context, w io.Writer) error
}

// NewStrategy builds the strategy for tool over the store behind db.
func NewStrategy(tool, driver string, db *gorm.DB, log logger.Interface) (Strategy, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	dialect, err := dialectDir(driver)
	if err != nil {
		return nil, err
	}

	switch tool {
	case ToolGoose, "":
		fsys, err := fs.Sub(scripts, path.Join("scripts", "goose", dialect))
		if err != nil {
			return nil, fmt.Errorf("failed to open goose scripts: %w", err)
		}
		return newGooseStrategy(sqlDB, driver, fsys, log.Named("migration.goose"))
	case ToolGolangMigrate:
		return newGolangMigrateStrategy(sqlDB, driver, path.Join("scripts", "migrate", dialect),
			log.Named("migration.golang-migrate")), nil
	default:
		return nil, fmt.Errorf("unknown migration tool: %s", tool)
	}
}

func dialectDir(driver string) (string, error) {
	switch driver {
	case config.DriverSQLite, "":
		return "sqlite", nil
	case config.DriverMySQL:
		return "mysql", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// Up runs every pending migration with the default tool.
func Up(ctx context.Context, driver string, db *gorm.DB, log logger.Interface) error {
	s, err := NewStrategy(ToolGoose, driver, db, log)
	if err != nil {
		return err
	}
	return s.Up(ctx)
}
