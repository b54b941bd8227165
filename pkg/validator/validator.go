package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// EmailRegex matches the local@domain.tld shape used by the stored
	// customer records.
	EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// PhoneRegex accepts digits, spaces, hyphens, parentheses and plus
	// signs. The empty string is accepted on purpose, matching the stored
	// documents this service must stay compatible with.
	PhoneRegex = regexp.MustCompile(`^[0-9\s\-()+]*$`)
)

// IsValidEmail reports whether email has the local@domain.tld shape.
func IsValidEmail(email string) bool {
	return EmailRegex.MatchString(email)
}

// IsValidPhone reports whether phone contains only digits, spaces,
// hyphens, parentheses and plus signs.
func IsValidPhone(phone string) bool {
	return PhoneRegex.MatchString(phone)
}

// Validator is a validator that validates the given struct.
type Validator interface {
	// Validate validates the given struct
	Validate(s any) error
}

type DefaultValidator struct {
	v *validator.Validate
}

// NewDefaultValidator creates a new default validator.
func NewDefaultValidator() *DefaultValidator {
	return &DefaultValidator{v: validator.New()}
}

func (v DefaultValidator) Validate(s any) error {
	return v.v.Struct(s)
}

// IsValidationError checks if the given error is a validation error
func IsValidationError(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}

func ValidationErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "dive":
		return "contains an invalid element"
	default:
		return "is invalid"
	}
}
