package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inkfolio/inkfolio/internal/infrastructure/config"
	"github.com/inkfolio/inkfolio/internal/infrastructure/migration"
	"github.com/inkfolio/inkfolio/internal/interfaces/cli/bootstrap"
	"github.com/inkfolio/inkfolio/internal/shared/constants"
)

var (
	env   string
	tool  string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&tool, "tool", "t", migration.ToolGoose, "Migration tool (goose, golang-migrate)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new migration files with the specified name for the configured database driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func openStrategy() (*bootstrap.Env, migration.Strategy, error) {
	app, err := bootstrap.Open(env)
	if err != nil {
		return nil, nil, err
	}

	strategy, err := migration.NewStrategy(tool, app.Config.Database.Driver, app.DB, app.Log)
	if err != nil {
		app.Close()
		return nil, nil, err
	}
	return app, strategy, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	app, strategy, err := openStrategy()
	if err != nil {
		return err
	}
	defer app.Close()

	app.Log.Infow("running up migrations", "environment", env, "tool", strategy.Name())

	if err := strategy.Up(cmd.Context()); err != nil {
		app.Log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	app.Log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}

	app, strategy, err := openStrategy()
	if err != nil {
		return err
	}
	defer app.Close()

	app.Log.Infow("running down migrations", "environment", env, "tool", strategy.Name(), "steps", steps)

	if err := strategy.Down(cmd.Context(), steps); err != nil {
		app.Log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	app.Log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, strategy, err := openStrategy()
	if err != nil {
		return err
	}
	defer app.Close()

	version, err := strategy.Version(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Tool:            %s\n", strategy.Name())
	fmt.Fprintf(out, "  Driver:          %s\n", app.Config.Database.Driver)
	fmt.Fprintf(out, "  Current Version: %d\n\n", version)

	if err := strategy.Status(cmd.Context(), out); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

// runCreate only needs the driver, so it skips the database connection.
func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	generator := migration.NewGenerator(filepath.Join(wd, migration.ScriptsDir))
	files, err := generator.Create(tool, cfg.Database.Driver, name)
	if err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", f)
	}
	return nil
}
