// Package response renders every API reply in one envelope:
// {success, code, message, data?, error?{code, details?}, meta{request_id}}.
package response

import (
	"net/http"

	"sportera/internal/delivery/api/validator"
	deliverycontext "sportera/internal/delivery/context"
	domainerrors "sportera/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope is the body of every JSON response
type Envelope struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`            // HTTP status, repeated for clients that only see the body
	Message string     `json:"message"`         // Human-readable summary
	Data    any        `json:"data,omitempty"`  // Payload of successful responses
	Error   *ErrorInfo `json:"error,omitempty"` // Set on failures only
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// FieldError describes which input field failed and why
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Success returns a successful response with the standard status text as message
func Success(c echo.Context, statusCode int, data any) error {
	return SuccessWithMessage(c, statusCode, http.StatusText(statusCode), data)
}

// SuccessWithMessage returns a successful response with a custom message
func SuccessWithMessage(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, Envelope{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// ValidationFailed renders a request DTO validation failure with one entry per broken field
func ValidationFailed(c echo.Context, err error) error {
	violations := validator.Violations(err)
	if len(violations) == 0 {
		return BadRequest(c, "VALIDATION_FAILED", "request validation failed")
	}

	details := make([]FieldError, 0, len(violations))
	for _, violation := range violations {
		details = append(details, FieldError{Field: violation.Field, Reason: "failed on " + violation.Rule})
	}

	return BadRequestWithDetails(c, "VALIDATION_FAILED", "request validation failed", details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors; anything else is returned for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return BadRequestWithDetails(c, validationErr.ErrorCode(), validationErr.Message(),
			[]FieldError{{Field: validationErr.Field, Reason: validationErr.Reason}})
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
