package validator

import (
	"strings"

	playground "github.com/go-playground/validator/v10"
)

var validate = playground.New(playground.WithRequiredStructEnabled())

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Struct validates a request DTO against its `validate` tags and maps
// the failures to field-keyed messages.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return err
	}

	var out ValidationErrors
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	case "latitude":
		return "must be a valid latitude"
	case "longitude":
		return "must be a valid longitude"
	default:
		return "is invalid"
	}
}
