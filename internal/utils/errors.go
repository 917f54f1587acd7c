package utils

import (
	"net/http"

	"mangoadvisory/internal/api/dto/common"
	"mangoadvisory/internal/logging"

	"github.com/gin-gonic/gin"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logger := logging.GetGlobalLogger()
	logger.Error("%s: %v", message, err)
}

// HandleAPIError logs err and responds with the given status and a generic
// message. Driver and hashing internals never reach the caller; in release
// mode no detail of any kind is exposed.
func HandleAPIError(c *gin.Context, err error, status int, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.JSON(status, common.NewErrorResponse(message, nil))
}

// HandleNotFound responds with a 404 and the given message
func HandleNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, common.NewErrorResponse(message, nil))
}
