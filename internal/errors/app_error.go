package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	Details    []string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = append(e.Details, details...)

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeConfig     = "CONFIG_ERROR"
	ErrCodeUpstream   = "UPSTREAM_ERROR"
	ErrCodeCache      = "CACHE_ERROR"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

// ConfigError reports missing or invalid service configuration. It is always
// raised before any upstream call is attempted.
func ConfigError(message string) *AppError {
	return NewAppError(ErrCodeConfig, message, http.StatusInternalServerError)
}

func CacheError(message string) *AppError {
	return NewAppError(ErrCodeCache, message, http.StatusInternalServerError)
}

// UpstreamError mirrors a non-success status from the commerce API. The
// upstream response body travels in Detail so the caller sees the same
// diagnostics the platform returned.
func UpstreamError(statusCode int, message string) *AppError {
	return NewAppError(ErrCodeUpstream, message, statusCode)
}

// Unauthorized responses from the commerce API come back with an opaque
// body, so they get annotated with the usual suspects.
var UpstreamAuthCauses = []string{
	"Invalid or expired access token",
	"Incorrect store id",
	"Token doesn't have required permissions",
	"Incorrect authentication header format",
}

func UpstreamUnauthorizedError(message string) *AppError {
	return UpstreamError(http.StatusUnauthorized, message).WithDetails(UpstreamAuthCauses...)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
