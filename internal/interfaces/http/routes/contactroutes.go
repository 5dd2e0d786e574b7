package routes

import (
	"github.com/gin-gonic/gin"

	contactHandlers "github.com/inkfolio/inkfolio/internal/interfaces/http/handlers/contact"
	"github.com/inkfolio/inkfolio/internal/interfaces/http/middleware"
)

type ContactRouteConfig struct {
	ContactHandler *contactHandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	// SubmitLimit guards the public form; nil disables it.
	SubmitLimit gin.HandlerFunc
}

func SetupContactRoutes(engine *gin.Engine, config *ContactRouteConfig) {
	submit := []gin.HandlerFunc{config.ContactHandler.Submit}
	if config.SubmitLimit != nil {
		submit = append([]gin.HandlerFunc{config.SubmitLimit}, submit...)
	}
	engine.POST("/contact", submit...)

	submissions := engine.Group("/contact-submissions")
	submissions.Use(config.AuthMiddleware.RequireAdmin())
	{
		submissions.GET("", config.ContactHandler.List)
		submissions.PATCH("/:id/status", config.ContactHandler.UpdateStatus)
	}
}
