// Package errs provides structured error handling for scaffolding operations.
//
// Overview:
//   - Responsibility: Define error codes and structured error wrapping
//   - Key Types: Code type for error classification, E struct for structured errors
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Compatible with standard library error wrapping
//   - Performance Notes: Minimal allocations, one-shot CLI error paths
//
// Usage:
//
//	err := errs.Newf(errs.CodeInvalidName, "module name %q is not a valid identifier", name)
//	if errs.IsCode(err, errs.CodeAlreadyExists) { ... }
package errs

import (
	"errors"
	"fmt"
)

// Code represents an error classification code.
type Code string

// Error codes for the scaffold generator. Every failure of a forge
// operation maps to exactly one of these.
const (
	// CodeInvalidName indicates the module name is not a valid identifier.
	CodeInvalidName Code = "INVALID_NAME"
	// CodeAlreadyExists indicates the target module directory already exists.
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	// CodeAnchorNotFound indicates the settings file lacks the registration anchor.
	CodeAnchorNotFound Code = "ANCHOR_NOT_FOUND"
	// CodeIOFailure indicates a filesystem read or write failed.
	CodeIOFailure Code = "IO_FAILURE"
	// CodeAlreadyRegistered indicates the module is already mentioned in the
	// settings file. This is surfaced as a warning, never as a hard failure.
	CodeAlreadyRegistered Code = "ALREADY_REGISTERED"
)

// E represents a structured error with code, operation, and message.
type E struct {
	Code Code   // Error classification code
	Op   string // Operation that failed
	Err  error  // Underlying error (may be nil)
	Msg  string // Human-readable message
}

// Error implements the error interface.
func (e *E) Error() string {
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
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

// Wrap creates a new structured error wrapping an existing error.
// The operation name helps identify where the error occurred.
func Wrap(code Code, op string, err error) error {
	return &E{
		Code: code,
		Op:   op,
		Err:  err,
	}
}

// Wrapf creates a new structured error wrapping an existing error with a
// formatted message.
func Wrapf(code Code, op string, err error, format string, args ...any) error {
	return &E{
		Code: code,
		Op:   op,
		Err:  err,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the error code from an error.
// Returns empty string if the error doesn't carry a code.
func CodeOf(err error) Code {
	var e *E
	if err != nil && errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode checks if an error has a specific code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
