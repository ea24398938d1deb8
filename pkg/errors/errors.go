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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Markup errors
	ErrMalformedMarkup ErrorCode = "MALFORMED_MARKUP"
	ErrUnregisteredTag ErrorCode = "UNREGISTERED_TAG"

	// Attribute errors
	ErrInvalidAttribute ErrorCode = "INVALID_ATTRIBUTE"
	ErrUnknownAttribute ErrorCode = "UNKNOWN_ATTRIBUTE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Stylesheet errors
	ErrStylesheetLoad    ErrorCode = "STYLESHEET_LOAD"
	ErrStylesheetInvalid ErrorCode = "STYLESHEET_INVALID"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// TextyError represents a structured error with code and details
type TextyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TextyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TextyError) Unwrap() error {
	return e.Wrapped
}

// Is matches any TextyError carrying the same code
func (e *TextyError) Is(target error) bool {
	var targetErr *TextyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TextyError with the given code and message
func New(code ErrorCode, message string) *TextyError {
	return &TextyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TextyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TextyError {
	return &TextyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TextyError
func Wrap(err error, code ErrorCode, message string) *TextyError {
	if err == nil {
		return nil
	}
	return &TextyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TextyError {
	if err == nil {
		return nil
	}
	return &TextyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TextyError) WithDetail(key string, value interface{}) *TextyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TextyError) WithDetails(details map[string]interface{}) *TextyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var textyErr *TextyError
	if errors.As(err, &textyErr) {
		return textyErr.Code == code
	}
	return false
}

// IsMalformedMarkup reports whether err was caused by unbalanced tags in the input text.
func IsMalformedMarkup(err error) bool {
	return IsErrorCode(err, ErrMalformedMarkup)
}

// IsUnregisteredTag reports whether err was caused by a tag with no registered style.
func IsUnregisteredTag(err error) bool {
	return IsErrorCode(err, ErrUnregisteredTag)
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TextyError
func GetErrorCode(err error) ErrorCode {
	var textyErr *TextyError
	if errors.As(err, &textyErr) {
		return textyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TextyError
func GetErrorDetails(err error) map[string]interface{} {
	var textyErr *TextyError
	if errors.As(err, &textyErr) {
		return textyErr.Details
	}
	return nil
}
