package errors

import (
	"net/http"

	"pushgate/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
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

// Predefined error types
var (
	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"No device is registered with this token",
		"",
	)

	ErrTokenRequired = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_REQUIRED",
		"Token is required",
		"",
	)

	ErrInvalidPlatform = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PLATFORM",
		"Device type must be android, ios or web",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrNotificationNotEligible = NewBaseError(
		http.StatusConflict,
		"NOTIFICATION_NOT_ELIGIBLE",
		"Only draft notifications can be dispatched",
		"",
	)

	ErrNoEligibleRecipients = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_ELIGIBLE_RECIPIENTS",
		"No active devices match the targeting criteria",
		"",
	)

	// Gateway-related errors
	ErrGatewayUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"GATEWAY_UNAVAILABLE",
		"Push gateway is not configured",
		"Check the Firebase service account credentials",
	)

	ErrGatewayRejected = NewBaseError(
		http.StatusBadGateway,
		"GATEWAY_REJECTED",
		"Push gateway rejected the message",
		"",
	)

	// Generic database errors
	ErrDatabaseExecute = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Database operation failed",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error with a readable message
func NewDatabaseExecuteError(err error, message string) error {
	return ErrDatabaseExecute.WithDetails(err.Error()).WrapMessage(message)
}
