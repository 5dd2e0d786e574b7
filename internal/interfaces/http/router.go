package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/inkfolio/inkfolio/internal/infrastructure/ratelimit"
	"github.com/inkfolio/inkfolio/internal/interfaces/http/middleware"
	"github.com/inkfolio/inkfolio/internal/interfaces/http/routes"

	_ "github.com/inkfolio/inkfolio/docs"
)

// Router registers every route on the container's engine.
type Router struct {
	c *Container
}

func NewRouter(c *Container) *Router {
	return &Router{c: c}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.c
	engine := c.engine
	httpLog := c.log.Named("http")

	engine.Use(middleware.CustomLogger(httpLog))
	engine.Use(middleware.Recovery(httpLog))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())
	if c.metrics != nil {
		engine.Use(c.metrics.Middleware())
		engine.GET("/metrics", c.metrics.Handler())
	}

	engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupContentRoutes(engine, &routes.ContentRouteConfig{
		ReflectionHandler: c.hdlrs.reflectionHandler,
		AuthMiddleware:    c.authMiddleware,
	})
	routes.SetupContactRoutes(engine, &routes.ContactRouteConfig{
		ContactHandler: c.hdlrs.contactHandler,
		AuthMiddleware: c.authMiddleware,
		SubmitLimit:    r.limit("contact", ratelimit.Policy{PerMinute: c.cfg.RateLimit.ContactPerMinute, PerHour: c.cfg.RateLimit.ContactPerHour}),
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		SessionHandler: c.hdlrs.sessionHandler,
		LoginLimit:     r.limit("login", ratelimit.Policy{PerMinute: c.cfg.RateLimit.LoginPerMinute}),
	})
}

func (r *Router) limit(scope string, policy ratelimit.Policy) gin.HandlerFunc {
	if r.c.rateLimiter == nil || len(policy.Windows()) == 0 {
		return nil
	}
	return middleware.RateLimit(r.c.rateLimiter, scope, policy, r.c.log.Named("ratelimit"))
}

// Engine returns the Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.c.engine
}
