package validation

import (
	"fmt"
	"regexp"
	"strings"

	"mangoadvisory/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	digitsRegex   = regexp.MustCompile(`^\d{10,15}$`)
	phoneStripper = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("phone", validatePhone)
	v.RegisterValidation("servicetype", validateServiceType)
}

// NormalizePhone strips formatting characters so the stored value is
// digits-only. A single leading + is dropped as well.
func NormalizePhone(phone string) string {
	normalized := phoneStripper.Replace(strings.TrimSpace(phone))
	normalized = strings.TrimPrefix(normalized, "+")
	return normalized
}

// IsValidPhone reports whether phone normalizes to 10-15 digits.
func IsValidPhone(phone string) bool {
	return digitsRegex.MatchString(NormalizePhone(phone))
}

// validatePhone checks if the phone number is valid after normalization
func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

// validateServiceType checks if the value is a known service type
func validateServiceType(fl validator.FieldLevel) bool {
	return models.ServiceType(fl.Field().String()).Valid()
}

// ValidationError represents a field-level validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatValidationError formats validator errors into a user-friendly response
func FormatValidationError(err error) []ValidationError {
	var errs []ValidationError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errs = append(errs, ValidationError{
				Field:   fieldName(e),
				Message: messageForTag(e),
			})
		}
	}
	return errs
}

// ErrorMessage flattens validator errors into a single human message, one
// clause per failing field.
func ErrorMessage(err error) string {
	errs := FormatValidationError(err)
	if len(errs) == 0 {
		return "Invalid request body"
	}

	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Message
	}
	return strings.Join(parts, ", ")
}

func fieldName(e validator.FieldError) string {
	// Struct field names are exported Go names; present them lowerCamel to
	// match the JSON contract.
	name := e.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func messageForTag(e validator.FieldError) string {
	field := fieldName(e)
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please provide a valid email"
	case "phone":
		return "Please provide a valid phone number"
	case "servicetype":
		return "Please provide a valid service type"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
