// Package validation wraps go-playground/validator to produce the
// field→message maps the API returns as 400 bodies.
package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Validator validates request structs tagged with `validate` rules.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator that reports fields by their JSON names, so the
// error map lines up with the request body the client actually sent.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		for i := 0; i < len(name); i++ {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})

	return &Validator{v: v}
}

// Validate checks s against its `validate` tags and returns a map of
// field name to human-readable message, or nil when s is valid.
func (v *Validator) Validate(s any) map[string]string {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Non-field error (e.g. passing a non-struct) is a programming
		// mistake; report it under a catch-all key rather than panic.
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, e := range fieldErrs {
		out[e.Field()] = message(e)
	}
	return out
}

// message converts a single field error into the phrasing used in responses.
func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	default:
		return "is invalid"
	}
}
