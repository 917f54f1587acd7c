package service

import (
	"context"
	"fmt"
	"sync"

	"mangoadvisory/internal/logging"
	"mangoadvisory/internal/models"
	"mangoadvisory/internal/repository"

	"github.com/google/uuid"
)

// ContactService orchestrates the contact-submission workflow:
// persist the message, then notify admin and visitor best-effort.
type ContactService interface {
	// Submit persists a contact message and dispatches notifications
	Submit(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error)
	// Get returns a contact message by ID
	Get(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
	// List returns all contact messages, newest first
	List(ctx context.Context) ([]*models.ContactMessage, error)
	// Delete removes a contact message
	Delete(ctx context.Context, id uuid.UUID) error
}

// contactService implements ContactService
type contactService struct {
	contacts repository.ContactRepository
	mail     MailService
}

// NewContactService creates a new ContactService instance
func NewContactService(contacts repository.ContactRepository, mail MailService) ContactService {
	return &contactService{
		contacts: contacts,
		mail:     mail,
	}
}

func (s *contactService) Submit(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	if msg.ServiceType == "" {
		msg.ServiceType = models.ServiceTypeOther
	}

	if err := s.contacts.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	// Notifications are best-effort and must not fail the workflow. Admin and
	// client legs run independently; each logs its own failure.
	logger := logging.GetGlobalLogger()
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := s.mail.SendContactFormToAdmin(ctx, msg); err != nil {
			logger.Error("Failed to forward contact message %s to admin: %v", msg.ID, err)
		}
	}()

	go func() {
		defer wg.Done()
		if err := s.mail.SendResponseToClient(ctx, msg.Email, msg.FirstName); err != nil {
			logger.Error("Failed to send auto-response for contact message %s: %v", msg.ID, err)
		}
	}()

	wg.Wait()

	return msg, nil
}

func (s *contactService) Get(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	return s.contacts.GetByID(ctx, id)
}

func (s *contactService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	return s.contacts.List(ctx)
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.contacts.Delete(ctx, id)
}
