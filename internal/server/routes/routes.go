package routes

import (
	"mangoadvisory/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	// Health check at root, outside the API group
	SetupHealthRoutes(router, h.Health)

	v1 := router.Group("/api/v1")

	// Contact routes (public)
	SetupContactRoutes(v1, h.Contact, m)

	// Account routes (public signup + CRUD)
	SetupAccountRoutes(v1, h.Account, m)

	logger.Info("All routes have been set up successfully")
}
