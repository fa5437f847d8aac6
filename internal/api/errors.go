package api

import (
	"errors"
	"net/http"

	"github.com/speakcoach/speakcoach-api/internal/api/shared"
	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrReminderNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict

	// Validation errors from the domain layer
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyTranscript),
		errors.Is(err, domain.ErrEmptyReminderEmail),
		errors.Is(err, domain.ErrInvalidReminderEmail),
		errors.Is(err, domain.ErrInvalidReminderTime),
		errors.Is(err, domain.ErrEmptyUserName),
		errors.Is(err, domain.ErrEmptyUserEmail),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong),
		errors.Is(err, domain.ErrEmptyPromptText):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return "Practice session not found"

	case errors.Is(err, service.ErrReminderNotFound):
		return "Reminder not found"

	case errors.Is(err, service.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, service.ErrEmailTaken):
		return "Email already registered"

	// Domain validation messages are written for users already.
	case MapErrorToStatusCode(err) == http.StatusBadRequest:
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// respondWithMappedError is the common error path for handlers: it maps
// the error to a status code and safe message, then responds and logs.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
