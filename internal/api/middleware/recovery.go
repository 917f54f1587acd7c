package middleware

import (
	"net/http"
	"runtime/debug"

	"mangoadvisory/internal/api/dto/common"
	"mangoadvisory/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a generic 500 without leaking any detail to
// the caller. The stack trace goes to the log only.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := logging.GetGlobalLogger()
				logger.Error("panic recovered: %s %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					err,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewErrorResponse("Internal server error", nil))
			}
		}()

		c.Next()
	}
}
