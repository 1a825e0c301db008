package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCredentials  = errors.New("invalid_credentials")
	ErrUserExists          = errors.New("user_exists")
	ErrForbidden           = errors.New("forbidden")
	ErrAdminRequired       = errors.New("only college administrators may create admin accounts")
	ErrAlreadyBootstrapped = errors.New("an administrator already exists")
	ErrEventNotFound       = errors.New("event not found")
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrSheetNotFound       = errors.New("no results uploaded for this department, batch and semester")
	ErrAnnualReportExists  = errors.New("an annual report already exists for this academic year")
	ErrDraftFailed         = errors.New("report drafting failed")
)

// FieldError is a problem with one input field. Field uses the wire name.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a caller mistake. Message is safe to show to clients.
type ValidationError struct {
	Message string
	Fields  []FieldError
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func invalidField(field, msg string) error {
	return &ValidationError{Message: msg, Fields: []FieldError{{Field: field, Error: msg}}}
}

// wrapInvalid keeps err reachable for errors.Is while showing msg.
func wrapInvalid(err error, msg string) error {
	return &ValidationError{Message: msg, Err: err}
}

func fieldsMessage(fields []FieldError) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Error
	}
	return strings.Join(parts, "; ")
}
