package service

import (
	"context"
	"errors"
	"testing"

	"mangoadvisory/internal/models"
	"mangoadvisory/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock ContactRepository
type mockContactRepository struct {
	repository.ContactRepository
	createFunc func(ctx context.Context, msg *models.ContactMessage) error
	created    []*models.ContactMessage
}

func (m *mockContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	msg.ID = uuid.New()
	m.created = append(m.created, msg)
	return nil
}

func contactInput() *models.ContactMessage {
	return &models.ContactMessage{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Phone:     "9876543210",
		Message:   "I would like to know more about your services.",
	}
}

func TestContactService_Submit(t *testing.T) {
	initTestLogger(t)

	repo := &mockContactRepository{}
	mail := &mockMailService{}
	svc := NewContactService(repo, mail)

	msg, err := svc.Submit(context.Background(), contactInput())
	require.NoError(t, err)

	assert.Equal(t, models.ServiceTypeOther, msg.ServiceType)
	assert.Equal(t, 1, mail.adminSends)
	assert.Equal(t, 1, mail.clientSends)
	assert.Equal(t, "jane@x.com", mail.lastClientTo)
}

func TestContactService_SubmitNotifyFailureIsSwallowed(t *testing.T) {
	initTestLogger(t)

	repo := &mockContactRepository{}
	mail := &mockMailService{failAll: true}
	svc := NewContactService(repo, mail)

	msg, err := svc.Submit(context.Background(), contactInput())
	require.NoError(t, err)
	require.NotNil(t, msg)
}

func TestContactService_SubmitStoreError(t *testing.T) {
	initTestLogger(t)

	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, msg *models.ContactMessage) error {
			return errors.New("connection reset")
		},
	}
	mail := &mockMailService{}
	svc := NewContactService(repo, mail)

	_, err := svc.Submit(context.Background(), contactInput())
	require.Error(t, err)

	// No notification is attempted when persistence fails.
	assert.Equal(t, 0, mail.adminSends)
	assert.Equal(t, 0, mail.clientSends)
}

func TestContactService_ResubmissionCreatesSecondMessage(t *testing.T) {
	initTestLogger(t)

	repo := &mockContactRepository{}
	svc := NewContactService(repo, &mockMailService{})

	_, err := svc.Submit(context.Background(), contactInput())
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), contactInput())
	require.NoError(t, err)

	// Contact messages are never deduplicated.
	assert.Len(t, repo.created, 2)
}
