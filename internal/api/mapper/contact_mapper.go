package mapper

import (
	"mangoadvisory/internal/api/dto/v1/contact"
	"mangoadvisory/internal/api/validation"
	"mangoadvisory/internal/models"
)

// ContactRequestToModel converts a validated submission into a domain model.
// The phone number is normalized to digits only; the service type defaults to
// Other when absent.
func ContactRequestToModel(req *contact.SubmitRequest) *models.ContactMessage {
	msg := &models.ContactMessage{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       validation.NormalizePhone(req.Phone),
		Message:     req.Message,
		ServiceType: models.ServiceType(req.ServiceType),
	}

	if req.Subject != "" {
		subject := req.Subject
		msg.Subject = &subject
	}
	if msg.ServiceType == "" {
		msg.ServiceType = models.ServiceTypeOther
	}

	return msg
}
