// Package errors provides structured error types for the docktree
// application surfaces (CLI and HTTP server).
//
// The layout engine itself reports wrapped sentinel errors; this package
// maps them to machine-readable codes so the CLI can print consistent
// messages and the server can pick HTTP statuses programmatically.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid direction: %s", dir)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Classify an engine error
//	coded := errors.FromLayout(tree.Split(formID, destID, dir))
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tilekit/docktree/pkg/layout"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidTopology  Code = "INVALID_TOPOLOGY"
	ErrCodeInvalidLayout    Code = "INVALID_LAYOUT"

	// Resource not found errors
	ErrCodeNotFound            Code = "NOT_FOUND"
	ErrCodeFormNotFound        Code = "FORM_NOT_FOUND"
	ErrCodeDestinationNotFound Code = "DESTINATION_NOT_FOUND"
	ErrCodeFileNotFound        Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// FromLayout classifies an error returned by the layout engine, wrapping it
// with the matching code. Errors that are already coded pass through
// unchanged; nil stays nil; anything unrecognized becomes INTERNAL_ERROR.
func FromLayout(err error) error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return err
	}

	switch {
	case errors.Is(err, layout.ErrFormNotFound):
		return Wrap(ErrCodeFormNotFound, err, "form not found")
	case errors.Is(err, layout.ErrDestinationNotFound):
		return Wrap(ErrCodeDestinationNotFound, err, "destination panel not found")
	case errors.Is(err, layout.ErrInvalidTopology):
		return Wrap(ErrCodeInvalidTopology, err, "invalid topology")
	case errors.Is(err, layout.ErrInvalidDirection):
		return Wrap(ErrCodeInvalidDirection, err, "invalid direction")
	case errors.Is(err, layout.ErrDuplicateNodeID),
		errors.Is(err, layout.ErrDuplicateForm),
		errors.Is(err, layout.ErrEmptyPanel),
		errors.Is(err, layout.ErrNilChild):
		return Wrap(ErrCodeInvalidLayout, err, "invalid layout tree")
	}
	return Wrap(ErrCodeInternal, err, "internal error")
}

// HTTPStatus maps an error code to the HTTP status the server responds with.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeFormNotFound, ErrCodeDestinationNotFound, ErrCodeNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidInput, ErrCodeInvalidDirection, ErrCodeInvalidTopology, ErrCodeInvalidLayout:
		return http.StatusBadRequest
	case ErrCodeInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
