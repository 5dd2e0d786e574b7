package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/inkfolio/inkfolio/internal/infrastructure/migration"
	"github.com/inkfolio/inkfolio/internal/infrastructure/ratelimit"
	"github.com/inkfolio/inkfolio/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/inkfolio/inkfolio/internal/interfaces/http"
	"github.com/inkfolio/inkfolio/internal/shared/config"
	"github.com/inkfolio/inkfolio/internal/shared/constants"
	"github.com/inkfolio/inkfolio/internal/shared/version"
)

const shutdownTimeout = 30 * time.Second

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the inkfolio HTTP API with the configuration for the given environment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	app, err := bootstrap.Open(env)
	if err != nil {
		return err
	}
	defer app.Close()

	cfg, log := app.Config, app.Log
	cfg.Server.Mode = bootstrap.MapEnvToGinMode(env)
	if err := cfg.ValidateAdmin(); err != nil {
		return err
	}

	log.Infow("starting server",
		"version", version.Version,
		"environment", env,
		"database", cfg.Database.Driver,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := handleMigrations(ctx, app); err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = ratelimit.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		log.Infow("redis connected", "addr", cfg.Redis.GetAddr())
	}

	container, err := httpRouter.NewContainer(app.DB, cfg, log, redisClient)
	if err != nil {
		return err
	}

	if _, err := container.SweepExpiredSessions(ctx); err != nil {
		log.Warnw("startup session sweep failed", "error", err)
	}

	router := httpRouter.NewRouter(container)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  seconds(cfg.Server.ReadTimeout, 15),
		WriteTimeout: seconds(cfg.Server.WriteTimeout, 15),
		IdleTimeout:  seconds(cfg.Server.IdleTimeout, 60),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server listening", "address", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	if err := container.WaitBackground(shutdownCtx); err != nil {
		log.Warnw("background tasks did not finish before shutdown", "error", err)
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(ctx context.Context, app *bootstrap.Env) error {
	driver := app.Config.Database.Driver

	if autoMigrate {
		if env == constants.EnvProduction {
			app.Log.Warnw("auto-migration is enabled in production")
		}
		if err := migration.Up(ctx, driver, app.DB, app.Log); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		app.Log.Infow("auto-migration completed")
		return nil
	}

	strategy, err := migration.NewStrategy(migration.ToolGoose, driver, app.DB, app.Log)
	if err != nil {
		return err
	}
	version, err := strategy.Version(ctx)
	if err != nil {
		app.Log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	if version == 0 && driver == config.DriverSQLite {
		app.Log.Warnw("database has no schema, run `inkfolio migrate up` or pass --auto-migrate")
	}
	app.Log.Infow("current migration version", "version", version)
	return nil
}

func seconds(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Second
}
