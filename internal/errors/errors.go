package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is an application-specific error type
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// wraps an error with a code and message
func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// CodeOf returns the code of the outermost AppError in err's chain,
// or CodeInternal when there is none.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// Error code constants
const (
	CodeNotFound           = "NOT_FOUND"           // Absence surfaced by the transport layer
	CodeValidationFailed   = "VALIDATION_FAILED"   // Malformed input value, e.g. a bad URL
	CodeDecodeFailed       = "DECODE_FAILED"       // Stored row could not be rebuilt into an entity
	CodeWriteFailed        = "WRITE_FAILED"        // Insert had no effect or was rejected
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE" // Connectivity, timeout or query failure
	CodeInternal           = "INTERNAL_ERROR"
)
