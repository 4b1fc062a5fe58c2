// Package errors provides structured error handling compatible with standard library.
//
// Overview:
//   - Responsibility: Define error codes and structured error wrapping for scaffolding runs
//   - Key Types: Code type for error classification, E struct for structured errors
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Compatible with standard library error wrapping
//   - Performance Notes: Minimal allocations
//
// Usage:
//
//	err := errors.Invalid("projectName", "project name is required")
//	wrapped := errors.Wrap(errors.CodeWriteFailed, "server.js", originalErr)
//	code := errors.CodeOf(err)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents an error classification code.
type Code string

// Error codes used by the scaffolder.
const (
	// CodeInvalidArgument marks a bad answer; E.Field names the offending field.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeAlreadyExists marks a target directory that is already present.
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	// CodeWriteFailed marks a file-system failure while persisting an artifact.
	CodeWriteFailed Code = "WRITE_FAILED"
	// CodeNotFound marks a missing input such as an answers file.
	CodeNotFound Code = "NOT_FOUND"
	// CodeCanceled marks a run stopped by its context.
	CodeCanceled Code = "CANCELED"
	CodeInternal Code = "INTERNAL"
)

// E represents a structured error with code, operation, field, message, and cause.
type E struct {
	Code  Code   // Error classification code
	Op    string // Operation or path that failed
	Field string // Offending configuration field (validation errors only)
	Msg   string // Human-readable message
	Err   error  // Underlying error (may be nil)
}

// Error implements the error interface.
func (e *E) Error() string {
	parts := make([]string, 0, 4)
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Msg != "" {
		parts = append(parts, e.Msg)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return string(e.Code)
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error for error unwrapping.
func (e *E) Unwrap() error {
	return e.Err
}

// New creates a new structured error with the given code and message.
func New(code Code, msg string) error {
	return &E{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a new structured error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &E{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Invalid creates a validation error naming the offending field.
func Invalid(field, msg string) error {
	return &E{
		Code:  CodeInvalidArgument,
		Field: field,
		Msg:   msg,
	}
}

// Wrap creates a new structured error wrapping an existing error.
// The operation name helps identify where the error occurred.
func Wrap(code Code, op string, err error) error {
	return &E{
		Code: code,
		Op:   op,
		Err:  err,
	}
}

// Wrapf creates a new structured error wrapping an existing error with formatted message.
func Wrapf(code Code, op string, err error, format string, args ...any) error {
	return &E{
		Code: code,
		Op:   op,
		Err:  err,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the error code from an error.
// Returns empty string if the error doesn't have a code.
func CodeOf(err error) Code {
	var e *E
	if err != nil && errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// FieldOf returns the configuration field named by a validation error.
func FieldOf(err error) string {
	var e *E
	if err != nil && errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// IsCode checks if an error has a specific code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// As is a convenience wrapper around the standard library's errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is a convenience wrapper around the standard library's errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
