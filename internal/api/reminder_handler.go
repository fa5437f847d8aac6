package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/speakcoach/speakcoach-api/internal/api/shared"
	"github.com/speakcoach/speakcoach-api/internal/service"
)

// SetReminderRequest represents the request body for setting a daily
// reminder time.
type SetReminderRequest struct {
	Email        string `json:"email" validate:"required,email"`
	ReminderTime string `json:"reminder_time" validate:"required"`
}

// ReminderHandler handles reminder-related HTTP requests.
type ReminderHandler struct {
	reminderService *service.ReminderService
	validator       *validator.Validate
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		validator:       validator.New(),
	}
}

// SetReminder handles POST /api/reminders requests
func (h *ReminderHandler) SetReminder(w http.ResponseWriter, r *http.Request) {
	var req SetReminderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	reminder, err := h.reminderService.SetReminder(r.Context(), req.Email, req.ReminderTime)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reminderToDTO(reminder))
}

// GetReminder handles GET /api/reminders?email= requests
func (h *ReminderHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing email query parameter")
		return
	}

	reminder, err := h.reminderService.GetReminder(r.Context(), email)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reminderToDTO(reminder))
}
