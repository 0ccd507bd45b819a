package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field name to its violation messages.
type FieldErrors map[string][]string

var validate *validator.Validate

func init() {
	validate = validator.New()

	// report errors under JSON field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	zipPattern := regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	_ = validate.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipPattern.MatchString(fl.Field().String())
	})
}

// Validate checks a struct against its validate tags. It returns nil when
// every field is valid; otherwise a field-keyed map of human-readable
// messages. No field is ever partially accepted.
func Validate(s any) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return FieldErrors{"_": {"invalid input"}}
	}

	fieldErrors := FieldErrors{}
	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		fieldErrors[field] = append(fieldErrors[field], fieldErrorMessage(fieldError))
	}
	return fieldErrors
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", field, param)
	case "zipcode":
		return fmt.Sprintf("%s must be a valid ZIP code", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, param)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// NormalizeOptional trims an optional string and collapses blank values
// to nil, so "cleared" and "never set" both persist as absent.
func NormalizeOptional(val *string) *string {
	if val == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*val)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
