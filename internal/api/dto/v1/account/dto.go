package account

import (
	"time"

	"github.com/google/uuid"
)

// SignupRequest represents the payload for creating an account.
// The password ceiling matches the bcrypt input limit.
type SignupRequest struct {
	FirstName       string `json:"firstName" binding:"required,min=2,max=50"`
	LastName        string `json:"lastName" binding:"required,min=2,max=50"`
	Email           string `json:"email" binding:"required,email,max=255"`
	Phone           string `json:"phone" binding:"required,phone"`
	Password        string `json:"password" binding:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	AgreeToTerms    bool   `json:"agreeToTerms"`
}

// UpdateRequest represents the payload for updating an account.
// Only the allow-listed fields are accepted; anything else is ignored.
type UpdateRequest struct {
	FirstName string `json:"firstName" binding:"omitempty,min=2,max=50"`
	LastName  string `json:"lastName" binding:"omitempty,min=2,max=50"`
	Phone     string `json:"phone" binding:"omitempty,phone"`
}

// Response represents the account data returned in API responses.
// It never carries a password field.
type Response struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	AgreeToTerms bool      `json:"agreeToTerms"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SignupResponse is the body returned on successful registration
type SignupResponse struct {
	Message string    `json:"message"`
	User    *Response `json:"user"`
}

// ListResponse represents the response for listing accounts
type ListResponse struct {
	Users      []*Response `json:"users"`
	TotalCount int         `json:"totalCount"`
}
