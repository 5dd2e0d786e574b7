package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	contactUsecases "github.com/inkfolio/inkfolio/internal/application/contact/usecases"
	"github.com/inkfolio/inkfolio/internal/infrastructure/auth"
	"github.com/inkfolio/inkfolio/internal/infrastructure/config"
	"github.com/inkfolio/inkfolio/internal/infrastructure/email"
	"github.com/inkfolio/inkfolio/internal/infrastructure/ratelimit"
	"github.com/inkfolio/inkfolio/internal/infrastructure/token"
	"github.com/inkfolio/inkfolio/internal/interfaces/http/middleware"
	"github.com/inkfolio/inkfolio/internal/shared/goroutine"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
	"github.com/inkfolio/inkfolio/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers and middlewares
// together. The database and Redis client are owned by the caller.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    ratelimit.RateLimiter
	metrics        *middleware.Metrics

	credentials auth.CredentialVerifier
	tokens      token.SessionTokenGenerator
	renderer    markdown.Renderer
	notifier    contactUsecases.SubmissionNotifier
	tasks       *goroutine.Group
}

// NewContainer builds the object graph. redisClient may be nil, which
// disables rate limiting.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface, redisClient *redis.Client) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	if err := c.engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid server.trusted_proxies: %w", err)
	}
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	credentials, err := auth.NewAdminCredentials(&c.cfg.Admin)
	if err != nil {
		return fmt.Errorf("failed to configure admin credentials: %w", err)
	}
	c.credentials = credentials
	c.tokens = token.NewSessionTokenGenerator()
	c.renderer = markdown.NewRenderer()
	c.tasks = goroutine.NewGroup(c.log.Named("tasks"))

	if c.cfg.Email.Enabled {
		c.notifier = email.NewSMTPNotifier(c.cfg.Email)
		c.log.Infow("contact email notifications enabled", "notify_address", c.cfg.Email.NotifyAddress)
	}

	if c.redis != nil {
		c.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis)
	} else {
		c.log.Warnw("redis disabled, login and contact endpoints are not rate limited")
	}

	if c.cfg.Metrics.Enabled {
		c.metrics = middleware.NewMetrics()
	}
	return nil
}

// SweepExpiredSessions removes every expired admin session.
func (c *Container) SweepExpiredSessions(ctx context.Context) (int64, error) {
	return c.ucs.sweepSessionsUC.Execute(ctx)
}

// WaitBackground blocks until pending background work such as contact
// notifications has finished or ctx is done.
func (c *Container) WaitBackground(ctx context.Context) error {
	return c.tasks.Wait(ctx)
}

func (c *Container) Engine() *gin.Engine {
	return c.engine
}
