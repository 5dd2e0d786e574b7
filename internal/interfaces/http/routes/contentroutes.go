package routes

import (
	"github.com/gin-gonic/gin"

	reflectionHandlers "github.com/inkfolio/inkfolio/internal/interfaces/http/handlers/reflection"
	"github.com/inkfolio/inkfolio/internal/interfaces/http/middleware"
)

type ContentRouteConfig struct {
	ReflectionHandler *reflectionHandlers.Handler
	AuthMiddleware    *middleware.AuthMiddleware
}

func SetupContentRoutes(engine *gin.Engine, config *ContentRouteConfig) {
	requireAdmin := config.AuthMiddleware.RequireAdmin()

	content := engine.Group("/content")
	{
		// Static paths before /:id
		content.GET("", config.ReflectionHandler.ListPublished)
		content.GET("/categories", config.ReflectionHandler.ListCategories)
		content.POST("", requireAdmin, config.ReflectionHandler.Create)

		content.GET("/:id", config.ReflectionHandler.Get)
		content.PUT("/:id", requireAdmin, config.ReflectionHandler.Update)
		content.DELETE("/:id", requireAdmin, config.ReflectionHandler.Delete)
	}

	engine.GET("/content-admin", requireAdmin, config.ReflectionHandler.ListAll)
}
