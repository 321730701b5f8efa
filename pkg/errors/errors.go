package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/painel/painel-backend/pkg/i18n"
)

// Standard error types
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBadRequest         = errors.New("bad request")
	ErrInternal           = errors.New("internal server error")
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnavailable        = errors.New("service unavailable")
)

// AppError represents an application error with context
type AppError struct {
	Err        error             `json:"-"`
	Message    string            `json:"message"`
	MessageKey string            `json:"-"` // i18n key for localization
	Params     map[string]string `json:"-"`
	Code       string            `json:"code"`
	StatusCode int               `json:"status_code"`
	Details    map[string]string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Localize returns a localized version of the error message
func (e *AppError) Localize(ctx context.Context) string {
	if e.MessageKey == "" {
		return e.Message
	}
	return i18n.TFromContext(ctx, e.MessageKey, e.Params)
}

// New creates a new AppError
func New(code string, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, code string, message string, statusCode int) *AppError {
	return &AppError{
		Err:        err,
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails adds details to an AppError
func (e *AppError) WithDetails(details map[string]string) *AppError {
	e.Details = details
	return e
}

// Common error constructors

func NotFound(resource string) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		MessageKey: "errors.not_found",
		Params:     map[string]string{"resource": resource},
		StatusCode: http.StatusNotFound,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Err:        ErrUnauthorized,
		Code:       "UNAUTHORIZED",
		Message:    message,
		MessageKey: "errors.unauthorized",
		StatusCode: http.StatusUnauthorized,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		Code:       "BAD_REQUEST",
		Message:    message,
		MessageKey: "errors.bad_request",
		StatusCode: http.StatusBadRequest,
	}
}

func Internal(message string) *AppError {
	return &AppError{
		Err:        ErrInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		MessageKey: "errors.internal",
		StatusCode: http.StatusInternalServerError,
	}
}

func Validation(details map[string]string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		Code:       "VALIDATION_ERROR",
		Message:    "validation failed",
		MessageKey: "errors.validation_failed",
		StatusCode: http.StatusBadRequest,
		Details:    details,
	}
}

func InvalidCredentials() *AppError {
	return &AppError{
		Err:        ErrInvalidCredentials,
		Code:       "INVALID_CREDENTIALS",
		Message:    "invalid username or password",
		MessageKey: "errors.invalid_credentials",
		StatusCode: http.StatusUnauthorized,
	}
}

func TokenExpired() *AppError {
	return &AppError{
		Err:        ErrTokenExpired,
		Code:       "TOKEN_EXPIRED",
		Message:    "session has expired",
		MessageKey: "errors.token_expired",
		StatusCode: http.StatusUnauthorized,
	}
}

func TokenInvalid() *AppError {
	return &AppError{
		Err:        ErrTokenInvalid,
		Code:       "TOKEN_INVALID",
		Message:    "invalid session token",
		MessageKey: "errors.token_invalid",
		StatusCode: http.StatusUnauthorized,
	}
}

// DatasetUnavailable is returned while the dashboard has no loaded snapshot.
func DatasetUnavailable() *AppError {
	return &AppError{
		Err:        ErrUnavailable,
		Code:       "DATASET_UNAVAILABLE",
		Message:    "dashboard data is not available yet",
		MessageKey: "errors.dataset_unavailable",
		StatusCode: http.StatusServiceUnavailable,
	}
}

// Is checks if the error matches a target error
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As attempts to convert an error to a specific type
func As(err error, target any) bool {
	return errors.As(err, target)
}
