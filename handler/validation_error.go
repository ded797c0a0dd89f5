package handler

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/blockhire/portal/pkg/validator"
)

// ValidationError maps field names to messages.
type ValidationError url.Values

// NewValidationError returns an empty ValidationError.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// ValidationErrorFromResult converts a validator result. A valid result
// gives an empty ValidationError.
func ValidationErrorFromResult(res validator.Result) ValidationError {
	e := make(ValidationError, len(res.Errors))
	for field, msg := range res.Errors {
		e.Add(field, msg)
	}
	return e
}

func validationErrorFromErrors(errs validator.ValidationErrors) ValidationError {
	e := make(ValidationError, len(errs))
	for _, fe := range errs {
		e.Add(fe.Field, fe.Message)
	}
	return e
}

// Error lists the first message of each field, sorted by field name.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, field := range slices.Sorted(maps.Keys(e)) {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
