package repository

import (
	"context"

	"mangoadvisory/internal/models"

	"github.com/google/uuid"
)

// UpdateAccountFields is the allow-list of mutable account fields. Empty
// strings leave the stored value untouched.
type UpdateAccountFields struct {
	FirstName string
	LastName  string
	Phone     string
}

// ContactRepository defines the interface for contact-message persistence
type ContactRepository interface {
	// Create inserts a new contact message and fills in ID and timestamps
	Create(ctx context.Context, msg *models.ContactMessage) error
	// GetByID returns a contact message by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
	// List returns all contact messages, newest first
	List(ctx context.Context) ([]*models.ContactMessage, error)
	// Delete removes a contact message by ID
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountRepository defines the interface for account persistence
type AccountRepository interface {
	// Create inserts a new account and fills in ID and timestamps.
	// Returns ErrDuplicateEmail if the email uniqueness constraint is violated.
	Create(ctx context.Context, acct *models.Account) error
	// GetByID returns an account by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	// GetByEmail returns an account by email (case-insensitive). The password
	// hash is included for verification paths.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	// List returns all accounts, newest first, with the password hash omitted
	List(ctx context.Context) ([]*models.Account, error)
	// Update changes the allow-listed fields and touches updated_at
	Update(ctx context.Context, id uuid.UUID, fields UpdateAccountFields) (*models.Account, error)
	// Delete removes an account by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
