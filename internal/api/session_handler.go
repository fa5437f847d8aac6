package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/speakcoach/speakcoach-api/internal/api/shared"
	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/service"
)

// CreateSessionRequest represents the request body for recording a
// practice session.
type CreateSessionRequest struct {
	Transcript      string            `json:"transcript" validate:"required,min=1"`
	Prompt          string            `json:"prompt"`
	DurationSeconds float64           `json:"duration_seconds" validate:"gte=0"`
	Profile         LearnerProfileDTO `json:"profile"`
}

// PronunciationFeedbackRequest represents the request body for
// pronunciation-only feedback.
type PronunciationFeedbackRequest struct {
	Transcript string `json:"transcript" validate:"required,min=1"`
}

// PronunciationFeedbackResponse carries the generated feedback text.
type PronunciationFeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// SessionHandler handles practice-session HTTP requests.
type SessionHandler struct {
	sessionService *service.SessionService
	validator      *validator.Validate
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		validator:      validator.New(),
	}
}

// CreateSession handles POST /api/sessions requests
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.sessionService.CreateSession(
		r.Context(), req.Transcript, req.Prompt, req.DurationSeconds, req.Profile.toDomain())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, sessionToDTO(session))
}

// ListSessions handles GET /api/sessions requests
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionService.ListSessions(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	// An empty history serializes as [], not null.
	response := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, sessionToDTO(session))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetSession handles GET /api/sessions/{id} requests
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithMappedError(w, r, domain.ErrInvalidID)
		return
	}

	session, err := h.sessionService.GetSession(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToDTO(session))
}

// PronunciationFeedback handles POST /api/feedback/pronunciation requests
func (h *SessionHandler) PronunciationFeedback(w http.ResponseWriter, r *http.Request) {
	var req PronunciationFeedbackRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	feedback, err := h.sessionService.GetPronunciationFeedback(r.Context(), req.Transcript)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PronunciationFeedbackResponse{Feedback: feedback})
}
