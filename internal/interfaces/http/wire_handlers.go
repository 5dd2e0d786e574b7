package http

import (
	"github.com/inkfolio/inkfolio/internal/interfaces/http/handlers"
	adminHandlers "github.com/inkfolio/inkfolio/internal/interfaces/http/handlers/admin"
	contactHandlers "github.com/inkfolio/inkfolio/internal/interfaces/http/handlers/contact"
	reflectionHandlers "github.com/inkfolio/inkfolio/internal/interfaces/http/handlers/reflection"
	"github.com/inkfolio/inkfolio/internal/interfaces/http/middleware"
)

type allHandlers struct {
	healthHandler     *handlers.HealthHandler
	reflectionHandler *reflectionHandlers.Handler
	contactHandler    *contactHandlers.Handler
	sessionHandler    *adminHandlers.SessionHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	httpLog := c.log.Named("http")

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(),
		reflectionHandler: reflectionHandlers.NewHandler(
			u.createReflectionUC,
			u.getReflectionUC,
			u.listReflectionsUC,
			u.updateReflectionUC,
			u.deleteReflectionUC,
			u.listCategoriesUC,
			httpLog,
		),
		contactHandler: contactHandlers.NewHandler(
			u.submitContactUC,
			u.listSubmissionsUC,
			u.updateSubmissionStatusUC,
			httpLog,
		),
		sessionHandler: adminHandlers.NewSessionHandler(
			u.loginUC,
			u.verifySessionUC,
			u.logoutUC,
			c.cfg.Cookie,
			c.cfg.Admin.SessionTTL(),
			httpLog,
		),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(u.verifySessionUC, c.cfg.Cookie.Name, httpLog)
}
