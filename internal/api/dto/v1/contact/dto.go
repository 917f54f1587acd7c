package contact

// SubmitRequest represents a contact form submission
type SubmitRequest struct {
	FirstName   string `json:"firstName" binding:"required,max=100"`
	LastName    string `json:"lastName" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Phone       string `json:"phone" binding:"required,phone"`
	Message     string `json:"message" binding:"required,min=10,max=2000"`
	Subject     string `json:"subject" binding:"omitempty,max=200"`
	ServiceType string `json:"serviceType" binding:"omitempty,servicetype"`
}
