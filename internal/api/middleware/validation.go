package middleware

import (
	"net/http"

	"mangoadvisory/internal/api/constants"
	"mangoadvisory/internal/api/dto/common"
	"mangoadvisory/internal/api/dto/v1/account"
	"mangoadvisory/internal/api/dto/v1/contact"
	"mangoadvisory/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware and registers
// the custom tags on gin's binding validator.
func NewValidationMiddleware() *ValidationMiddleware {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
	return &ValidationMiddleware{}
}

// ValidateContactRequest validates a contact form submission
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			rejectInvalid(c, err)
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

// ValidateSignupRequest validates an account signup. Cross-field rules run
// after binding so the original messages are preserved: mismatched passwords
// and unaccepted terms are rejected before any store access.
func (m *ValidationMiddleware) ValidateSignupRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			rejectInvalid(c, err)
			return
		}

		if req.Password != req.ConfirmPassword {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("Passwords do not match", nil))
			c.Abort()
			return
		}

		if !req.AgreeToTerms {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("You must agree to the terms and conditions", nil))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeySignup, &req)
		c.Next()
	}
}

// ValidateUpdateAccountRequest validates an account update
func (m *ValidationMiddleware) ValidateUpdateAccountRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			rejectInvalid(c, err)
			return
		}

		c.Set(constants.ContextKeyAccountUpdate, &req)
		c.Next()
	}
}

func rejectInvalid(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, common.NewErrorResponse(
		validation.ErrorMessage(err),
		validation.FormatValidationError(err),
	))
	c.Abort()
}
