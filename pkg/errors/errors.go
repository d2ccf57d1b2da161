package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Page lookup errors
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrCacheMissing ErrorCode = "CACHE_MISSING"
	ErrCacheCorrupt ErrorCode = "CACHE_CORRUPT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Update errors
	ErrUpdateDownload ErrorCode = "UPDATE_DOWNLOAD"
	ErrUpdateExtract  ErrorCode = "UPDATE_EXTRACT"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// QuickrefError represents a structured error with code and details
type QuickrefError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *QuickrefError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *QuickrefError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *QuickrefError) Is(target error) bool {
	var targetErr *QuickrefError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new QuickrefError with the given code and message
func New(code ErrorCode, message string) *QuickrefError {
	return &QuickrefError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new QuickrefError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *QuickrefError {
	return &QuickrefError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a QuickrefError
func Wrap(err error, code ErrorCode, message string) *QuickrefError {
	if err == nil {
		return nil
	}
	return &QuickrefError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *QuickrefError {
	if err == nil {
		return nil
	}
	return &QuickrefError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *QuickrefError) WithDetail(key string, value interface{}) *QuickrefError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var qErr *QuickrefError
	if errors.As(err, &qErr) {
		return qErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a QuickrefError
func GetErrorCode(err error) ErrorCode {
	var qErr *QuickrefError
	if errors.As(err, &qErr) {
		return qErr.Code
	}
	return ErrUnknown
}
