package handlers

import (
	"net/http"

	"mangoadvisory/internal/api/dto/common"
	"mangoadvisory/internal/database"
	"mangoadvisory/internal/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db *database.Database
}

func NewHealthHandler(db *database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Database connection error")
		return
	}

	c.JSON(http.StatusOK, common.NewMessageResponse("Server is running"))
}
