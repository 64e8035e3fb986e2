package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lciportal_backend/internal/auth"
	"lciportal_backend/internal/handlers"
	"lciportal_backend/internal/middleware"
)

// SetupRoutes mounts every route of the portal on the engine root. The
// public surface keeps its historical paths, so there is no version
// prefix.
func SetupRoutes(r *gin.Engine, h *handlers.AppHandlers, resolver *auth.PrincipalResolver) {
	authMW := middleware.AuthMiddleware(resolver)
	adminMW := middleware.AdminMiddleware()

	root := r.Group("")

	h.AuthHandler.RegisterRoutes(root)
	h.QuoteHandler.RegisterRoutes(root, authMW, adminMW)
	h.MessageHandler.RegisterRoutes(root, authMW, adminMW)
	h.MentorshipHandler.RegisterRoutes(root, authMW, adminMW)
	h.UserHandler.RegisterRoutes(root, authMW, adminMW)
	h.FileHandler.RegisterRoutes(root)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
