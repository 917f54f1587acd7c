package constants

// Context keys used to pass validated request payloads from middleware to handlers
const (
	// ContextKeyContact holds the validated contact submission payload
	ContextKeyContact = "contact"
	// ContextKeySignup holds the validated signup payload
	ContextKeySignup = "signup"
	// ContextKeyAccountUpdate holds the validated account update payload
	ContextKeyAccountUpdate = "account_update"
)
