package routes

import (
	"mangoadvisory/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAccountRoutes configures account management routes
func SetupAccountRoutes(router *gin.RouterGroup, account *handlers.AccountHandler, m *Middleware) {
	users := router.Group("/users")
	{
		users.POST("/signup", m.Validation.ValidateSignupRequest(), account.Signup)
		users.GET("", account.List)
		users.GET("/:id", account.Get)
		users.PUT("/:id", m.Validation.ValidateUpdateAccountRequest(), account.Update)
		users.DELETE("/:id", account.Delete)
	}
}
