package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"mangoadvisory/internal/logging"
	"mangoadvisory/internal/models"
	"mangoadvisory/internal/repository"

	"github.com/google/uuid"
)

// AccountService orchestrates the signup workflow and account CRUD.
type AccountService interface {
	// Signup validates email uniqueness, hashes the credential, persists the
	// account and dispatches notifications. Returns ErrConflict when the email
	// is already registered.
	Signup(ctx context.Context, acct *models.Account, password string) (*models.Account, error)
	// Get returns an account by ID
	Get(ctx context.Context, id uuid.UUID) (*models.Account, error)
	// List returns all accounts, newest first
	List(ctx context.Context) ([]*models.Account, error)
	// Update changes the allow-listed account fields
	Update(ctx context.Context, id uuid.UUID, fields repository.UpdateAccountFields) (*models.Account, error)
	// Delete removes an account
	Delete(ctx context.Context, id uuid.UUID) error
}

// accountService implements AccountService
type accountService struct {
	accounts  repository.AccountRepository
	passwords PasswordService
	mail      MailService
}

// NewAccountService creates a new AccountService instance
func NewAccountService(accounts repository.AccountRepository, passwords PasswordService, mail MailService) AccountService {
	return &accountService{
		accounts:  accounts,
		passwords: passwords,
		mail:      mail,
	}
}

func (s *accountService) Signup(ctx context.Context, acct *models.Account, password string) (*models.Account, error) {
	acct.Email = strings.ToLower(strings.TrimSpace(acct.Email))

	// Pre-check so the common duplicate case is rejected before hashing.
	_, err := s.accounts.GetByEmail(ctx, acct.Email)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, err
	}
	acct.PasswordHash = hash

	if err := s.accounts.Create(ctx, acct); err != nil {
		// A concurrent signup for the same email can slip past the pre-check;
		// the unique index resolves the race.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger := logging.GetGlobalLogger()
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := s.mail.SendSignupAlertToAdmin(ctx, acct); err != nil {
			logger.Error("Failed to notify admin about new account %s: %v", acct.ID, err)
		}
	}()

	go func() {
		defer wg.Done()
		if err := s.mail.SendResponseToClient(ctx, acct.Email, acct.FirstName); err != nil {
			logger.Error("Failed to send welcome mail for account %s: %v", acct.ID, err)
		}
	}()

	wg.Wait()

	return acct, nil
}

func (s *accountService) Get(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *accountService) List(ctx context.Context) ([]*models.Account, error) {
	return s.accounts.List(ctx)
}

func (s *accountService) Update(ctx context.Context, id uuid.UUID, fields repository.UpdateAccountFields) (*models.Account, error) {
	return s.accounts.Update(ctx, id, fields)
}

func (s *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.accounts.Delete(ctx, id)
}
