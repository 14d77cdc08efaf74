package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/osconstruct/construct-api/internal/api/shared"
)

// crossValidator lets request types add checks that validator tags
// cannot express, such as comparisons against the current year. The
// returned field errors are appended to the tag-derived ones so the
// response still enumerates every offending field.
type crossValidator interface {
	crossValidate() []shared.FieldError
}

// Validator wraps go-playground/validator configured to report field
// names by their JSON tags.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator shared by all handlers.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Check validates req and returns one FieldError per offending field,
// or nil when the payload is valid. Required-field failures surface
// alongside format failures on other fields; the result is never a
// single collapsed message.
func (v *Validator) Check(req any) []shared.FieldError {
	var fields []shared.FieldError

	if err := v.validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			fields = append(fields, shared.FieldError{Field: "", Message: "invalid payload"})
		} else {
			for _, fe := range ve {
				fields = append(fields, shared.FieldError{
					Field:   fe.Field(),
					Message: tagMessage(fe),
				})
			}
		}
	}

	if cv, ok := req.(crossValidator); ok {
		fields = append(fields, cv.crossValidate()...)
	}

	return fields
}

// tagMessage maps a failed validation tag to a user-friendly message.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid":
		return "must be a valid UUID"
	default:
		return "is invalid"
	}
}
