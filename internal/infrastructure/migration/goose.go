package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/inkfolio/inkfolio/internal/shared/config"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

type GooseStrategy struct {
	provider *goose.Provider
	logger   logger.Interface
}

func newGooseStrategy(db *sql.DB, driver string, fsys fs.FS, log logger.Interface) (*GooseStrategy, error) {
	dialect := goose.DialectSQLite3
	if driver == config.DriverMySQL {
		dialect = goose.DialectMySQL
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return &GooseStrategy{provider: provider, logger: log}, nil
}

func (s *GooseStrategy) Name() string {
	return ToolGoose
}

func (s *GooseStrategy) Up(ctx context.Context) error {
	from, err := s.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	results, err := s.provider.Up(ctx)
	if err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		s.logger.Infow("applied migration", "version", r.Source.Version, "duration", r.Duration)
	}

	to, err := s.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully", "from_version", from, "to_version", to)
	return nil
}

func (s *GooseStrategy) Down(ctx context.Context, steps int) error {
	for i := 0; i < steps; i++ {
		result, err := s.provider.Down(ctx)
		if err != nil {
			if errors.Is(err, goose.ErrNoNextVersion) {
				break
			}
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
		if result == nil {
			break
		}
		s.logger.Infow("rolled back migration", "version", result.Source.Version)
	}
	return nil
}

func (s *GooseStrategy) Version(ctx context.Context) (int64, error) {
	v, err := s.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return v, nil
}

func (s *GooseStrategy) Status(ctx context.Context, w io.Writer) error {
	statuses, err := s.provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	for _, st := range statuses {
		applied := "pending"
		if st.State == goose.StateApplied {
			applied = st.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "  %-24s %s\n", applied, st.Source.Path)
	}
	return nil
}
