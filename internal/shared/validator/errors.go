package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/changhyeonkim/member-registry/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// only the first failure is reported
	fieldErr := validationErrors[0]
	resp := sharedError.ValidationFailed.WithMessage(getErrorMessage(fieldErr))
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The value of `%s` cannot be empty!", fe.Field())
	case "min", "max":
		return fmt.Sprintf("The value of `%s` has an invalid length.", fe.Field())
	case "numeric", "digits":
		return fmt.Sprintf("The value of `%s` must be a number.", fe.Field())
	case "alphanumspace":
		return fmt.Sprintf("The value of `%s` cannot contain symbols!", fe.Field())
	default:
		return fmt.Sprintf("The value of `%s` is invalid.", fe.Field())
	}
}
