package models

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered user of the advisory site.
type Account struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // Never serialize the password hash
	AgreeToTerms bool      `json:"agreeToTerms"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
