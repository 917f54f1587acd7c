package handlers

import (
	"errors"
	"net/http"

	"mangoadvisory/internal/api/constants"
	"mangoadvisory/internal/api/dto/common"
	"mangoadvisory/internal/api/dto/v1/account"
	"mangoadvisory/internal/api/mapper"
	"mangoadvisory/internal/repository"
	"mangoadvisory/internal/service"
	"mangoadvisory/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountHandler struct {
	accountService service.AccountService
}

func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Signup handles POST /users/signup
func (h *AccountHandler) Signup(c *gin.Context) {
	// Set by the validation middleware
	payload, exists := c.Get(constants.ContextKeySignup)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Signup data not found in context")
		return
	}

	req, ok := payload.(*account.SignupRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Invalid signup data format")
		return
	}

	created, err := h.accountService.Signup(c.Request.Context(), mapper.SignupRequestToModel(req), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			c.JSON(http.StatusConflict, common.NewErrorResponse("Email already registered", nil))
			return
		}
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, account.SignupResponse{
		Message: "Account created successfully! We have received your information and will get back to you soon.",
		User:    mapper.AccountToResponse(created),
	})
}

// Get handles GET /users/:id
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid account id", nil))
		return
	}

	acct, err := h.accountService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleNotFound(c, "User not found")
			return
		}
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.HandleSuccess(c, mapper.AccountToResponse(acct))
}

// List handles GET /users
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountService.List(c.Request.Context())
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.HandleSuccess(c, account.ListResponse{
		Users:      mapper.AccountsToResponses(accounts),
		TotalCount: len(accounts),
	})
}

// Update handles PUT /users/:id
func (h *AccountHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid account id", nil))
		return
	}

	payload, exists := c.Get(constants.ContextKeyAccountUpdate)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Update data not found in context")
		return
	}

	req, ok := payload.(*account.UpdateRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, "Invalid update data format")
		return
	}

	updated, err := h.accountService.Update(c.Request.Context(), id, mapper.UpdateRequestToFields(req))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleNotFound(c, "User not found")
			return
		}
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    mapper.AccountToResponse(updated),
	})
}

// Delete handles DELETE /users/:id
func (h *AccountHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid account id", nil))
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleNotFound(c, "User not found")
			return
		}
		utils.HandleAPIError(c, err, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.HandleMessage(c, "User deleted successfully")
}
