package middleware

import (
	"time"

	"mangoadvisory/internal/logging"
	"mangoadvisory/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger is a middleware that logs request information
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		clientIP := utils.GetRealIP(c)

		logger := logging.GetGlobalLogger()
		logger.Printf("[HTTP] %s | %13v | %15s | %s | %s",
			logger.FormatHTTPStatus(statusCode),
			latency,
			clientIP,
			logger.FormatHTTPMethod(method),
			path,
		)
	}
}
