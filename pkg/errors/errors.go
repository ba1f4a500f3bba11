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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Decorator chain errors
	ErrCycle            ErrorCode = "CYCLE"
	ErrPolicyUnknown    ErrorCode = "POLICY_UNKNOWN"
	ErrShapeUnknown     ErrorCode = "SHAPE_UNKNOWN"
	ErrDecoratorUnknown ErrorCode = "DECORATOR_UNKNOWN"
	ErrRender           ErrorCode = "RENDER"

	// Recipe errors
	ErrRecipeLoad    ErrorCode = "RECIPE_LOAD"
	ErrRecipeInvalid ErrorCode = "RECIPE_INVALID"

	// FileSystem errors
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileExists ErrorCode = "FILE_EXISTS"
)

// DecorError represents a structured error with code and details
type DecorError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DecorError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DecorError) Unwrap() error {
	return e.Wrapped
}

// Is matches any DecorError carrying the same code
func (e *DecorError) Is(target error) bool {
	var targetErr *DecorError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DecorError with the given code and message
func New(code ErrorCode, message string) *DecorError {
	return &DecorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DecorError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DecorError {
	return &DecorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DecorError
func Wrap(err error, code ErrorCode, message string) *DecorError {
	if err == nil {
		return nil
	}
	return &DecorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DecorError {
	if err == nil {
		return nil
	}
	return &DecorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DecorError) WithDetail(key string, value interface{}) *DecorError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DecorError) WithDetails(details map[string]interface{}) *DecorError {
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
	var decorErr *DecorError
	if errors.As(err, &decorErr) {
		return decorErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DecorError
func GetErrorCode(err error) ErrorCode {
	var decorErr *DecorError
	if errors.As(err, &decorErr) {
		return decorErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DecorError
func GetErrorDetails(err error) map[string]interface{} {
	var decorErr *DecorError
	if errors.As(err, &decorErr) {
		return decorErr.Details
	}
	return nil
}
