package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "github.com/inkfolio/inkfolio/internal/interfaces/http/handlers/admin"
)

type AdminRouteConfig struct {
	SessionHandler *adminHandlers.SessionHandler
	// LoginLimit guards the login endpoint; nil disables it.
	LoginLimit gin.HandlerFunc
}

// SetupAdminRoutes registers the session endpoints. None of them require a
// session: verify and logout read the cookie themselves.
func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin")
	{
		login := []gin.HandlerFunc{config.SessionHandler.Login}
		if config.LoginLimit != nil {
			login = append([]gin.HandlerFunc{config.LoginLimit}, login...)
		}
		admin.POST("/login", login...)
		admin.GET("/verify", config.SessionHandler.Verify)
		admin.POST("/logout", config.SessionHandler.Logout)
	}
}
