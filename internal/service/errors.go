package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service
// implementations. Callers check for these with errors.Is(); the API
// layer maps them to HTTP status codes.
var (
	// ErrSessionNotFound indicates that the practice session does not
	// exist. API layer should map this to HTTP 404 Not Found.
	ErrSessionNotFound = errors.New("practice session not found")

	// ErrReminderNotFound indicates that no reminder exists for the
	// address. API layer should map this to HTTP 404 Not Found.
	ErrReminderNotFound = errors.New("reminder not found")

	// ErrUserNotFound indicates that the user does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that a user with the given email already
	// exists. API layer should map this to HTTP 409 Conflict.
	ErrEmailTaken = errors.New("email address already registered")
)

// ServiceError wraps unexpected errors from a service with context.
// Expected conditions are returned as the sentinel errors above instead.
type ServiceError struct {
	// Service is the service that failed (e.g., "session", "reminder")
	Service string
	// Operation is the operation that failed (e.g., "create_session")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError. It returns nil when err is
// nil so call sites can wrap unconditionally.
func NewServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
