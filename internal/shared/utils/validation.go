package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Accepts digits with optional leading +, spaces, dashes and parentheses.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{5,19}$`)

// RegisterPhoneValidator registers the "phone" rule on an external validator
// instance, e.g. gin's binding validator.
func RegisterPhoneValidator(v *validator.Validate) error {
	return v.RegisterValidation("phone", validatePhone)
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}
