package application

import (
	"regexp"
	"strings"

	"github.com/raushan1895/resort360/internal/domain"
)

// Validator holds the input validation rules shared by the services.
type Validator struct{}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)
	nameRegex  = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
)

// ValidateEmail checks the email format.
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return domain.NewValidationError("email", "email is required")
	}
	if !emailRegex.MatchString(email) {
		return domain.NewValidationError("email", "invalid email format")
	}
	return nil
}

// ValidatePhone checks the phone format after stripping separators.
func (v *Validator) ValidatePhone(phone string) error {
	if phone == "" {
		return domain.NewValidationError("phone", "phone is required")
	}

	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phoneRegex.MatchString(clean) {
		return domain.NewValidationError("phone", "phone must have between 7 and 15 digits")
	}
	return nil
}

// ValidateName checks a person or entity name.
func (v *Validator) ValidateName(name, field string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError(field, "is required")
	}
	if len(name) < 2 {
		return domain.NewValidationError(field, "must have at least 2 characters")
	}
	if len(name) > 80 {
		return domain.NewValidationError(field, "must have at most 80 characters")
	}
	if !nameRegex.MatchString(name) {
		return domain.NewValidationError(field, "contains invalid characters")
	}
	return nil
}

// ValidatePrice rejects non-positive amounts.
func (v *Validator) ValidatePrice(price float64, field string) error {
	if price <= 0 {
		return domain.NewValidationError(field, "must be greater than 0")
	}
	return nil
}
