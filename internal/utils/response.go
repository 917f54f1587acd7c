package utils

import (
	"net/http"

	"mangoadvisory/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleCreated sends a 201 response with a message and the created record
func HandleCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, common.NewDataResponse(message, data))
}

// HandleSuccess sends a 200 response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// HandleMessage sends a 200 response with just a message
func HandleMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewMessageResponse(message))
}
