package errors

import (
	"errors"
	"fmt"
)

// Error codes shared by the constructors and the sentinels below.
const (
	CodeEmptyDescription   = "EMPTY_DESCRIPTION"
	CodeInvalidID          = "INVALID_ID"
	CodeNotFound           = "NOT_FOUND"
	CodeUnknownCommand     = "UNKNOWN_COMMAND"
	CodeInputStreamFailure = "INPUT_STREAM_FAILURE"
	CodeDatabase           = "DATABASE_ERROR"
	CodeTimeout            = "TIMEOUT"
)

// Sentinels for use with errors.Is. AppError.Is matches on type and code only,
// so any error built by the constructors in this file matches its sentinel.
var (
	ErrEmptyDescription   = &AppError{Type: ErrorTypeValidation, Code: CodeEmptyDescription}
	ErrInvalidID          = &AppError{Type: ErrorTypeInvalidInput, Code: CodeInvalidID}
	ErrNotFound           = &AppError{Type: ErrorTypeNotFound, Code: CodeNotFound}
	ErrUnknownCommand     = &AppError{Type: ErrorTypeInvalidInput, Code: CodeUnknownCommand}
	ErrInputStreamFailure = &AppError{Type: ErrorTypeInputStream, Code: CodeInputStreamFailure}
)

// NewEmptyDescriptionError creates the error returned when a task description is blank
func NewEmptyDescriptionError(cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: "task description cannot be empty",
		Code:    CodeEmptyDescription,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    CodeNotFound,
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    CodeDatabase,
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidIDError creates the error for a task id argument that is not an unsigned number
func NewInvalidIDError(value string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid task id %q: %s", value, reason),
		Code:    CodeInvalidID,
		Context: map[string]interface{}{
			"value":  value,
			"reason": reason,
		},
	}
}

// NewUnknownCommandError creates the error for an unrecognised command keyword
func NewUnknownCommandError(line string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("unknown command: %q", line),
		Code:    CodeUnknownCommand,
		Context: map[string]interface{}{
			"line": line,
		},
	}
}

// NewInputStreamError wraps a failed read from the command input.
// Reaching the end of input is not a failure and must not be wrapped.
func NewInputStreamError(cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeInputStream,
		Message: "failed to read command input",
		Code:    CodeInputStreamFailure,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Code:    CodeTimeout,
		Context: map[string]interface{}{
			"operation": operation,
			"timeout":   timeout,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsRecoverable reports whether the command loop can keep running after err.
// User errors are recoverable; input, database and timeout failures are not.
func IsRecoverable(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return true
		}
	}
	return false
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}
