package routes

import (
	"mangoadvisory/internal/api/handlers"
	"mangoadvisory/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	group := router.Group("/contact")
	{
		// Public endpoint with its own tighter rate limit. Repeated identical
		// submissions are accepted; only the request rate is bounded.
		group.POST("/submit",
			middleware.RateLimitMiddleware(middleware.RateLimitConfig{
				RPS:   1,
				Burst: 5,
			}),
			m.Validation.ValidateContactRequest(),
			contact.Submit,
		)

		// Administrative operations
		group.GET("", contact.List)
		group.GET("/:id", contact.Get)
		group.DELETE("/:id", contact.Delete)
	}
}
