package service

import (
	"context"
	"fmt"
	"time"

	"mangoadvisory/internal/config"
	"mangoadvisory/internal/models"

	"github.com/wneessen/go-mail"
)

// MailService dispatches admin alerts and client acknowledgements over SMTP.
// All sends are best-effort from the caller's point of view: a failure is
// returned so it can be logged, but callers never fail the workflow on it.
type MailService interface {
	// SendContactFormToAdmin forwards a contact submission to the admin inbox
	SendContactFormToAdmin(ctx context.Context, msg *models.ContactMessage) error
	// SendSignupAlertToAdmin notifies the admin about a new registration
	SendSignupAlertToAdmin(ctx context.Context, acct *models.Account) error
	// SendResponseToClient sends the automatic acknowledgement to a visitor
	SendResponseToClient(ctx context.Context, email, name string) error
}

// mailService implements MailService on top of an SMTP transport
type mailService struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	adminEmail string
}

// NewMailService creates a new MailService from the SMTP configuration.
func NewMailService(cfg *config.Config) MailService {
	return &mailService{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		username:   cfg.SMTPUsername,
		password:   cfg.SMTPPassword,
		from:       cfg.MailFrom,
		adminEmail: cfg.AdminEmail,
	}
}

func (s *mailService) SendContactFormToAdmin(ctx context.Context, msg *models.ContactMessage) error {
	subject := "New Contact Form Submission"
	if msg.Subject != nil && *msg.Subject != "" {
		subject = fmt.Sprintf("New Contact Form Submission: %s", *msg.Subject)
	}

	body := fmt.Sprintf(
		"New contact form submission\n\n"+
			"Name: %s %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Service: %s\n\n"+
			"Message:\n%s\n",
		msg.FirstName, msg.LastName, msg.Email, msg.Phone, msg.ServiceType, msg.Message,
	)

	return s.send(ctx, s.adminEmail, subject, body)
}

func (s *mailService) SendSignupAlertToAdmin(ctx context.Context, acct *models.Account) error {
	body := fmt.Sprintf(
		"A new user has signed up: %s %s (%s)\n\nPhone: %s\n",
		acct.FirstName, acct.LastName, acct.Email, acct.Phone,
	)

	return s.send(ctx, s.adminEmail, "New User Registration", body)
}

func (s *mailService) SendResponseToClient(ctx context.Context, email, name string) error {
	if name == "" {
		name = email
	}

	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thank you for reaching out. We have received your information and one of\n"+
			"our advisors will get back to you soon.\n\n"+
			"Best regards,\nMango Advisory\n",
		name,
	)

	return s.send(ctx, email, "We have received your message", body)
}

// send delivers a single plain-text message through the configured SMTP host.
func (s *mailService) send(ctx context.Context, to, subject, body string) error {
	if s.host == "" || s.from == "" || to == "" {
		return fmt.Errorf("mail transport not configured")
	}

	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}
	if s.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.username),
			mail.WithPassword(s.password),
		)
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
