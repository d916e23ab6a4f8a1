package errors

import (
	"fmt"
	"net/http"

	"postboard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
// Two BaseErrors match under errors.Is when their error codes are equal, so a
// copy with a request-specific message still matches the predefined value.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy with a different user-facing message.
func (e *BaseError) WithMessage(format string, args ...any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(format, args...),
		details:   e.details,
	}
}

// Predefined error types
var (
	// Identity errors
	ErrDuplicateIdentity = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_IDENTITY",
		"User with email already existed",
		"",
	)

	ErrAuthenticationFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
		"Incorrect email or password",
		"",
	)

	ErrIdentityNotFound = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_NOT_FOUND",
		"Could not find user for this token",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Not authenticated",
		"",
	)

	// Token errors
	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token",
		"",
	)

	ErrTokenMissingSubject = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING_SUBJECT",
		"Token is missing 'sub' field",
		"",
	)

	ErrTokenKindMismatch = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_KIND_MISMATCH",
		"Token has incorrect type",
		"",
	)

	// Resource errors
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"Post not found",
		"",
	)

	ErrFileNotFound = NewBaseError(
		http.StatusNotFound,
		"FILE_NOT_FOUND",
		"File not found",
		"",
	)

	ErrInvalidSorting = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SORTING",
		"Missing information of sorting",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrPayloadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PAYLOAD_TOO_LARGE",
		"Uploaded file is too large",
		"",
	)

	// Infrastructure errors
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"Data store is unavailable",
		"",
	)

	ErrMailDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"MAIL_DELIVERY_FAILED",
		"Failed to send email",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"File storage operation failed",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StoreError reports a failure of the backing store. It matches
// ErrStoreUnavailable under errors.Is and keeps the driver error reachable
// through Unwrap.
type StoreError struct {
	op    string
	cause error
}

// NewStoreError wraps a driver error raised while executing op.
func NewStoreError(op string, cause error) error {
	return errors.WithStack(&StoreError{op: op, cause: cause})
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStoreUnavailable.message, e.op, e.cause)
}

func (e *StoreError) Unwrap() error {
	return e.cause
}

func (e *StoreError) Is(target error) bool {
	return ErrStoreUnavailable.Is(target)
}

func (e *StoreError) HTTPCode() int {
	return ErrStoreUnavailable.httpCode
}

func (e *StoreError) ErrorCode() string {
	return ErrStoreUnavailable.errorCode
}

func (e *StoreError) Message() string {
	return ErrStoreUnavailable.message
}

func (e *StoreError) Details() string {
	return e.op
}
