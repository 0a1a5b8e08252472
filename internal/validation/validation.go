// Package validation applies the declarative rules attached to request
// shapes via `validate` struct tags and reports failures as a flat list of
// field/message pairs.
package validation

import (
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = validator.New()

// Check validates v against its struct tags. A nil result means v passed.
func Check(v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Message: err.Error()}}
	}

	res := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		res = append(res, FieldError{
			Field:   fe.Field(),
			Message: fe.Field() + " failed rule " + fe.Tag(),
		})
	}
	return res
}
