package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryProtocol   Category = "protocol"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// BindError is a structured error with a code, a subject, and documentation.
type BindError struct {
	// Code is a unique error identifier (e.g., "B002").
	Code string

	// Category is the error type (validation, protocol, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Subject is the offending item: a handler name, an attribute name,
	// an element id. Appended to the message when set.
	Subject string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *BindError) Error() string {
	msg := e.Message
	if e.Subject != "" {
		msg = msg + ": " + e.Subject
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *BindError) Unwrap() error {
	return e.Wrapped
}

// WithSubject records the offending item (handler name, attribute, element id).
func (e *BindError) WithSubject(subject string) *BindError {
	e.Subject = subject
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *BindError) WithDetail(d string) *BindError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *BindError) WithSuggestion(s string) *BindError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *BindError) Wrap(err error) *BindError {
	e.Wrapped = err
	return e
}

// New creates a BindError from a registered error code.
func New(code string) *BindError {
	template, ok := registry[code]
	if !ok {
		return &BindError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &BindError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new BindError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *BindError {
	return &BindError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a BindError.
func FromError(err error, code string) *BindError {
	if err == nil {
		return nil
	}
	if be, ok := err.(*BindError); ok {
		return be
	}
	return New(code).Wrap(err)
}

// IsCode reports whether err, or any error in its tree, is a BindError
// with the given code.
func IsCode(err error, code string) bool {
	for err != nil {
		if be, ok := err.(*BindError); ok && be.Code == code {
			return true
		}
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			err = x.Unwrap()
		case interface{ Unwrap() []error }:
			for _, sub := range x.Unwrap() {
				if IsCode(sub, code) {
					return true
				}
			}
			return false
		default:
			return false
		}
	}
	return false
}

// AsBindError extracts a BindError from err's tree.
func AsBindError(err error) (*BindError, bool) {
	var be *BindError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
