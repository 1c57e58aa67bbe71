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

	// Style definition errors. These are structural and never retried.
	ErrSyntax        ErrorCode = "SYNTAX"
	ErrOverflow      ErrorCode = "OVERFLOW"
	ErrDuplicateRule ErrorCode = "DUPLICATE_RULE"
	ErrUnknownStyle  ErrorCode = "UNKNOWN_STYLE"
	ErrIncludeCycle  ErrorCode = "INCLUDE_CYCLE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// HitError represents a structured error with code and details
type HitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HitError) Is(target error) bool {
	var targetErr *HitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HitError with the given code and message
func New(code ErrorCode, message string) *HitError {
	return &HitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HitError {
	return &HitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HitError
func Wrap(err error, code ErrorCode, message string) *HitError {
	if err == nil {
		return nil
	}
	return &HitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HitError {
	if err == nil {
		return nil
	}
	return &HitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HitError) WithDetail(key string, value interface{}) *HitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *HitError) WithDetails(details map[string]interface{}) *HitError {
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
	var hitErr *HitError
	if errors.As(err, &hitErr) {
		return hitErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HitError
func GetErrorCode(err error) ErrorCode {
	var hitErr *HitError
	if errors.As(err, &hitErr) {
		return hitErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HitError
func GetErrorDetails(err error) map[string]interface{} {
	var hitErr *HitError
	if errors.As(err, &hitErr) {
		return hitErr.Details
	}
	return nil
}

// Detail keys shared by the packages that report style definition errors.
const (
	DetailOffset  = "offset"
	DetailRule    = "rule"
	DetailPattern = "pattern"
	DetailStyle   = "style"
	DetailPath    = "path"
)

// SyntaxAt creates an ErrSyntax error positioned at a byte offset of the
// pattern source.
func SyntaxAt(offset int, format string, args ...interface{}) *HitError {
	return Newf(ErrSyntax, format, args...).WithDetail(DetailOffset, offset)
}

// Offset returns the source offset recorded on a syntax error.
func Offset(err error) (int, bool) {
	details := GetErrorDetails(err)
	if details == nil {
		return 0, false
	}
	off, ok := details[DetailOffset].(int)
	return off, ok
}

// IsStyleError reports whether err is one of the structural style definition
// errors raised while building a formatter.
func IsStyleError(err error) bool {
	switch GetErrorCode(err) {
	case ErrSyntax, ErrOverflow, ErrDuplicateRule, ErrUnknownStyle, ErrIncludeCycle:
		return true
	}
	return false
}

// AddDetail records a detail on the first HitError in err's chain and
// returns err. Errors of other types are returned unchanged.
func AddDetail(err error, key string, value interface{}) error {
	var hitErr *HitError
	if errors.As(err, &hitErr) {
		hitErr.WithDetail(key, value)
	}
	return err
}
