package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"mangoadvisory/internal/logging"
	"mangoadvisory/internal/models"
	"mangoadvisory/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func initTestLogger(t *testing.T) {
	t.Helper()
	err := logging.InitLogger(&logging.LogConfig{
		File:       filepath.Join(os.TempDir(), "mangoadvisory-test.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NoError(t, err)
}

// Mock AccountRepository
type mockAccountRepository struct {
	repository.AccountRepository
	createFunc     func(ctx context.Context, acct *models.Account) error
	getByEmailFunc func(ctx context.Context, email string) (*models.Account, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, acct *models.Account) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, acct)
	}
	acct.ID = uuid.New()
	return nil
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

// Mock MailService
type mockMailService struct {
	mu           sync.Mutex
	adminSends   int
	clientSends  int
	failAll      bool
	lastClientTo string
}

func (m *mockMailService) SendContactFormToAdmin(ctx context.Context, msg *models.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adminSends++
	if m.failAll {
		return fmt.Errorf("smtp unavailable")
	}
	return nil
}

func (m *mockMailService) SendSignupAlertToAdmin(ctx context.Context, acct *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adminSends++
	if m.failAll {
		return fmt.Errorf("smtp unavailable")
	}
	return nil
}

func (m *mockMailService) SendResponseToClient(ctx context.Context, email, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clientSends++
	m.lastClientTo = email
	if m.failAll {
		return fmt.Errorf("smtp unavailable")
	}
	return nil
}

func signupInput() *models.Account {
	return &models.Account{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "John@x.com",
		Phone:        "9876543210",
		AgreeToTerms: true,
	}
}

func TestAccountService_Signup(t *testing.T) {
	initTestLogger(t)

	repo := &mockAccountRepository{}
	mail := &mockMailService{}
	svc := NewAccountService(repo, NewPasswordService(), mail)

	created, err := svc.Signup(context.Background(), signupInput(), "secret123")
	require.NoError(t, err)

	// Email is normalized to lower case before any store access.
	assert.Equal(t, "john@x.com", created.Email)

	// The credential is stored only as a verifiable one-way hash.
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))

	// Both notification legs were attempted before responding.
	assert.Equal(t, 1, mail.adminSends)
	assert.Equal(t, 1, mail.clientSends)
	assert.Equal(t, "john@x.com", mail.lastClientTo)
}

func TestAccountService_SignupDuplicateEmail(t *testing.T) {
	initTestLogger(t)

	createCalls := 0
	repo := &mockAccountRepository{
		getByEmailFunc: func(ctx context.Context, email string) (*models.Account, error) {
			return &models.Account{Email: email}, nil
		},
		createFunc: func(ctx context.Context, acct *models.Account) error {
			createCalls++
			return nil
		},
	}
	mail := &mockMailService{}
	svc := NewAccountService(repo, NewPasswordService(), mail)

	_, err := svc.Signup(context.Background(), signupInput(), "secret123")
	assert.ErrorIs(t, err, ErrConflict)

	// The duplicate is rejected before hashing or creating anything.
	assert.Equal(t, 0, createCalls)
	assert.Equal(t, 0, mail.adminSends)
	assert.Equal(t, 0, mail.clientSends)
}

func TestAccountService_SignupLostRace(t *testing.T) {
	initTestLogger(t)

	repo := &mockAccountRepository{
		createFunc: func(ctx context.Context, acct *models.Account) error {
			// Concurrent signup won the unique index.
			return repository.ErrDuplicateEmail
		},
	}
	mail := &mockMailService{}
	svc := NewAccountService(repo, NewPasswordService(), mail)

	_, err := svc.Signup(context.Background(), signupInput(), "secret123")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 0, mail.adminSends)
}

func TestAccountService_SignupNotifyFailureIsSwallowed(t *testing.T) {
	initTestLogger(t)

	repo := &mockAccountRepository{}
	mail := &mockMailService{failAll: true}
	svc := NewAccountService(repo, NewPasswordService(), mail)

	created, err := svc.Signup(context.Background(), signupInput(), "secret123")

	// Notification failures never fail the workflow nor roll back the record.
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 1, mail.adminSends)
	assert.Equal(t, 1, mail.clientSends)
}

func TestAccountService_SignupStoreError(t *testing.T) {
	initTestLogger(t)

	repo := &mockAccountRepository{
		createFunc: func(ctx context.Context, acct *models.Account) error {
			return errors.New("connection reset")
		},
	}
	mail := &mockMailService{}
	svc := NewAccountService(repo, NewPasswordService(), mail)

	_, err := svc.Signup(context.Background(), signupInput(), "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Equal(t, 0, mail.adminSends)
}
