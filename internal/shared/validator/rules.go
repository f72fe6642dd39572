package validator

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// alphanumSpaceRegex matches ASCII letters, digits and whitespace only
	alphanumSpaceRegex = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)

	// digitsRegex matches ASCII digits only (no sign, no separators)
	digitsRegex = regexp.MustCompile(`^[0-9]+$`)

	standalone     *validator.Validate
	standaloneOnce sync.Once
)

// ValidateAlphanumSpace accepts letters, digits and whitespace
func ValidateAlphanumSpace(fl validator.FieldLevel) bool {
	return alphanumSpaceRegex.MatchString(fl.Field().String())
}

// ValidateDigits accepts a non-empty run of ASCII digits
func ValidateDigits(fl validator.FieldLevel) bool {
	return digitsRegex.MatchString(fl.Field().String())
}

// Var validates a single value against a tag using a validator that
// already knows the common rules. It does not depend on gin's binding engine.
func Var(value any, tag string) error {
	standaloneOnce.Do(func() {
		standalone = validator.New(validator.WithRequiredStructEnabled())
		// registration cannot fail for valid tag names
		_ = register(standalone)
	})
	return standalone.Var(value, tag)
}
