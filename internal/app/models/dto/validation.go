package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a request binding error into an ErrorDetail.
// Field-level validator errors are reported per field; anything else becomes
// a generic invalid-request detail.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			messages = append(messages, describeFieldError(fieldErr))
		}

		detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed")
		detail = detail.WithDetails(messages)
		if len(validationErrs) == 1 {
			detail = detail.WithField(validationErrs[0].Field())
		}
		return detail
	}

	detail := NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format")
	return detail.WithDetails(err.Error())
}

func describeFieldError(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
