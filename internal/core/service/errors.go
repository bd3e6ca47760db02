package service

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrMissingOwner       = errors.New("missing owner")
	ErrPasswordMismatch   = errors.New("passwords did not match")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const (
	FieldTitle     = "title"
	FieldUsername  = "username"
	FieldPassword1 = "password1"
	FieldPassword2 = "password2"
)

// ValidationError reports invalid user input, one message per field.
// It is returned before anything is persisted.
type ValidationError struct {
	Fields map[string]string
}

// Error implements error.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}

	slices.Sort(fields)

	var sb strings.Builder
	sb.WriteString("invalid input")
	for i, f := range fields {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(f)
		sb.WriteString(": ")
		sb.WriteString(e.Fields[f])
	}

	return sb.String()
}

func (e *ValidationError) Add(field string, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}

	e.Fields[field] = message
}

// Err returns the validation error if at least one field is invalid, nil otherwise
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}

	return e
}

func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}

	return nil, false
}
