package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/inkfolio/inkfolio/internal/shared/config"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

// GolangMigrateStrategy drives golang-migrate from the embedded up/down pairs.
// Closing a migrate instance closes the sql.DB for the sqlite driver, so it is
// meant for one-shot CLI runs.
type GolangMigrateStrategy struct {
	db     *sql.DB
	driver string
	dir    string
	logger logger.Interface
}

func newGolangMigrateStrategy(db *sql.DB, driver, dir string, log logger.Interface) *GolangMigrateStrategy {
	return &GolangMigrateStrategy{db: db, driver: driver, dir: dir, logger: log}
}

func (s *GolangMigrateStrategy) Name() string {
	return ToolGolangMigrate
}

func (s *GolangMigrateStrategy) instance() (*migrate.Migrate, error) {
	src, err := iofs.New(scripts, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	var (
		drv  database.Driver
		name string
	)
	if s.driver == config.DriverMySQL {
		drv, err = mysql.WithInstance(s.db, &mysql.Config{})
		name = "mysql"
	} else {
		drv, err = sqlite3.WithInstance(s.db, &sqlite3.Config{})
		name = "sqlite3"
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s driver: %w", name, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, drv)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func (s *GolangMigrateStrategy) Up(_ context.Context) error {
	m, err := s.instance()
	if err != nil {
		return err
	}

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		s.logger.Warnw("database is in dirty state, please fix manually", "version", from)
		return fmt.Errorf("database is in dirty state at version %d", from)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	to, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	s.logger.Infow("migration completed successfully", "from_version", from, "to_version", to)
	return nil
}

func (s *GolangMigrateStrategy) Down(_ context.Context, steps int) error {
	m, err := s.instance()
	if err != nil {
		return err
	}

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("down migration failed", "error", err)
		return fmt.Errorf("failed to run down migrations: %w", err)
	}
	return nil
}

func (s *GolangMigrateStrategy) Version(_ context.Context) (int64, error) {
	m, err := s.instance()
	if err != nil {
		return 0, err
	}

	v, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return int64(v), nil
}

func (s *GolangMigrateStrategy) Status(_ context.Context, w io.Writer) error {
	m, err := s.instance()
	if err != nil {
		return err
	}

	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Fprintln(w, "  no migrations applied")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get version: %w", err)
	}

	fmt.Fprintf(w, "  version %d (dirty: %t)\n", v, dirty)
	return nil
}
