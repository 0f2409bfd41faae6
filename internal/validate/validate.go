// Package validate wraps go-playground/validator with the custom rules of the
// marketplace schema and converts failures into per-field errors.
package validate

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries a map of field name to human-readable message.
// No partial state change occurs when it is returned: validation always runs
// before the first write.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the standard error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("field '%s': %s", field, msg))
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// HTTPCode returns the HTTP status code, satisfying the AppError contract.
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code.
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Validator is the wrapper over go-playground/validator used by the usecases.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New()

	// Report field names from json tags so callers see the wire-level name,
	// not the Go struct field.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	registerCustomRules(v)

	return &Validator{validate: v}
}

// Struct validates the given struct against its validate tags. Returns a
// *ValidationError when one or more fields fail.
func (v *Validator) Struct(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Reflection-level failure, not a field validation result.
		return err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = messageFor(fe)
	}

	return &ValidationError{Fields: fields}
}

// messageFor renders a short message for a single field failure.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "intl_phone":
		return "must be a phone number in international format"
	case "dni":
		return "must be 8 digits followed by a letter"
	case "care_category":
		return "must be one of the permitted care categories"
	case "gender":
		return "must be one of M, H or O"
	case "order_status":
		return "must be a valid order status"
	default:
		return fmt.Sprintf("invalid value (failed on '%s')", fe.Tag())
	}
}
