package errors

import (
	"fmt"
	"net/http"
	"strings"

	"sportera/internal/errors"
)

// Kind classifies a failure so every outer layer can map it without string matching.
type Kind string

const (
	KindValidation    Kind = "ValidationFailure"
	KindNotFound      Kind = "NotFound"
	KindConflict      Kind = "Conflict"
	KindAuth          Kind = "AuthFailure"
	KindTokenRejected Kind = "TokenRejected"
	KindDependency    Kind = "DependencyFailure"
	KindForbidden     Kind = "Forbidden"
	KindInternal      Kind = "Internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches two base errors by business code so WithDetails copies still match their sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

func (e *BaseError) Kind() Kind {
	return e.kind
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
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	ErrAccountAlreadyExists = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"an account with this email already exists",
		"",
	)

	ErrInsufficientPoints = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INSUFFICIENT_POINTS",
		"not enough points",
		"",
	)

	// Authentication-related errors. The message never says which half of the credentials was wrong.
	ErrInvalidCredentials = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrAuthenticationRequired = NewBaseError(
		KindAuth,
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"authentication required",
		"",
	)

	ErrCorruptCredential = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"CORRUPT_CREDENTIAL",
		"stored credential is unreadable",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		KindDependency,
		http.StatusServiceUnavailable,
		"TOKEN_ISSUE_FAILED",
		"session token could not be issued",
		"",
	)

	// Place-related errors
	ErrPlaceNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"place not found",
		"",
	)

	ErrPlaceOwnershipViolation = NewBaseError(
		KindForbidden,
		http.StatusForbidden,
		"PLACE_OWNERSHIP_VIOLATION",
		"you do not manage this place",
		"",
	)

	// Dependency errors
	ErrStoreUnavailable = NewBaseError(
		KindDependency,
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"storage is temporarily unavailable",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		KindDependency,
		http.StatusServiceUnavailable,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)
)

// ValidationError reports the first rule an input broke and which field broke it.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a validation failure for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NewValidationErrorf creates a validation failure with a formatted reason.
func NewValidationErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Kind() Kind { return KindValidation }
func (e *ValidationError) HTTPCode() int { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string { return "VALIDATION_FAILED" }
func (e *ValidationError) Message() string { return e.Error() }
func (e *ValidationError) Details() string { return e.Field }

// TokenRejectReason says why a session token was refused.
type TokenRejectReason string

const (
	TokenRejectInvalid TokenRejectReason = "invalid"
	TokenRejectExpired TokenRejectReason = "expired"
	TokenRejectRevoked TokenRejectReason = "revoked"
)

// TokenRejectedError is returned by token verification.
type TokenRejectedError struct {
	Reason TokenRejectReason
}

// NewTokenRejectedError creates a rejection with the given reason.
func NewTokenRejectedError(reason TokenRejectReason) *TokenRejectedError {
	return &TokenRejectedError{Reason: reason}
}

func (e *TokenRejectedError) Error() string {
	return "session token rejected: " + string(e.Reason)
}

func (e *TokenRejectedError) Kind() Kind { return KindTokenRejected }
func (e *TokenRejectedError) HTTPCode() int { return http.StatusUnauthorized }
func (e *TokenRejectedError) ErrorCode() string { return "TOKEN_" + strings.ToUpper(string(e.Reason)) }
func (e *TokenRejectedError) Message() string { return e.Error() }
func (e *TokenRejectedError) Details() string { return string(e.Reason) }

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindDependency
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}
