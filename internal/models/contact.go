package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType enumerates the advisory services a visitor can ask about.
type ServiceType string

const (
	ServiceTypeIndividual  ServiceType = "Individual"
	ServiceTypeBusiness    ServiceType = "Business"
	ServiceTypeCombo       ServiceType = "Combo"
	ServiceTypeInvestments ServiceType = "Investments"
	ServiceTypeOneOnOne    ServiceType = "1-1"
	ServiceTypeOther       ServiceType = "Other"
)

// Valid reports whether s is a known service type.
func (s ServiceType) Valid() bool {
	switch s {
	case ServiceTypeIndividual, ServiceTypeBusiness, ServiceTypeCombo,
		ServiceTypeInvestments, ServiceTypeOneOnOne, ServiceTypeOther:
		return true
	}
	return false
}

// ContactMessage represents a contact form submission. Messages are created
// once and never mutated; only an administrative delete exists.
type ContactMessage struct {
	ID          uuid.UUID   `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Message     string      `json:"message"`
	Subject     *string     `json:"subject,omitempty"`
	ServiceType ServiceType `json:"serviceType"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
