package httputil

import (
	"github.com/go-playground/validator/v10"
	"github.com/painel/painel-backend/pkg/errors"
)

var validate = validator.New()

// Validate validates a struct using go-playground/validator
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.BadRequest(err.Error())
		}

		details := make(map[string]string)
		for _, e := range validationErrors {
			details[e.Field()] = formatValidationError(e)
		}

		return errors.Validation(details)
	}
	return nil
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "datetime":
		return "must be a date formatted as " + e.Param()
	case "gtefield":
		return "must not be before " + e.Param()
	default:
		return "invalid value"
	}
}
