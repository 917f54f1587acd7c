package handlers

import (
	"errors"
	"net/http"

	"mangoadvisory/internal/api/constants"
	"mangoadvisory/internal/api/dto/common"
	"mangoadvisory/internal/api/dto/v1/contact"
	"mangoadvisory/internal/api/mapper"
	"mangoadvisory/internal/repository"
	"mangoadvisory/internal/service"
	"mangoadvisory/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /contact/submit
func (h *ContactHandler) Submit(c *gin.Context) {
	// Set by the validation middleware
	payload, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Contact data not found in context")
		return
	}

	req, ok := payload.(*contact.SubmitRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Invalid contact data format")
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), mapper.ContactRequestToModel(req))
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.HandleCreated(c,
		"Thank you for contacting us. We have received your message and will get back to you soon!",
		msg,
	)
}

// Get handles GET /contact/:id (administrative)
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid message id", nil))
		return
	}

	msg, err := h.contactService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleNotFound(c, "Message not found")
			return
		}
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.HandleSuccess(c, msg)
}

// List handles GET /contact (administrative)
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.HandleSuccess(c, gin.H{
		"messages":   messages,
		"totalCount": len(messages),
	})
}

// Delete handles DELETE /contact/:id (administrative)
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid message id", nil))
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleNotFound(c, "Message not found")
			return
		}
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.HandleMessage(c, "Message deleted successfully")
}
