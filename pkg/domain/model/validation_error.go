package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Errors raised while turning a draft into an opportunity
var (
	ErrValidation   = goerr.New("validation failed")
	ErrUnknownField = goerr.New("unknown form field")
)

// Context keys for error values
const (
	FieldKey      = "field"
	FieldValueKey = "field_value"
)

// FieldError reports why a single form field was rejected.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every rejected field of a submission.
// errors.Is(err, ErrValidation) holds for it.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Add records a rejected field
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Message returns the first message recorded for field, or "" if the field passed
func (e *ValidationError) Message(field string) string {
	if e == nil {
		return ""
	}
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// OrNil returns nil when no field was rejected so the result can be returned as error
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
