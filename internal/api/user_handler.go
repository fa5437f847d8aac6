package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/speakcoach/speakcoach-api/internal/api/shared"
	"github.com/speakcoach/speakcoach-api/internal/service"
)

// RegisterUserRequest represents the request body for creating a learner
// account.
type RegisterUserRequest struct {
	Name     string            `json:"name" validate:"required,min=1"`
	Email    string            `json:"email" validate:"required,email"`
	Password string            `json:"password" validate:"required,min=8,max=72"`
	Profile  LearnerProfileDTO `json:"profile"`
}

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

// RegisterUser handles POST /api/users requests
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.Register(
		r.Context(), req.Name, req.Email, req.Password, req.Profile.toDomain())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToDTO(user))
}

// GetUser handles GET /api/users/{email} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing email")
		return
	}

	user, err := h.userService.GetByEmail(r.Context(), email)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToDTO(user))
}
