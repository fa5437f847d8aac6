package api

import (
	"net/http"
	"time"

	"github.com/speakcoach/speakcoach-api/internal/api/shared"
	"github.com/speakcoach/speakcoach-api/internal/service"
)

// PromptHandler handles daily-prompt HTTP requests.
type PromptHandler struct {
	promptService *service.PromptService
}

// NewPromptHandler creates a new PromptHandler.
func NewPromptHandler(promptService *service.PromptService) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

// GetDailyPrompt handles GET /api/prompt/daily requests
func (h *PromptHandler) GetDailyPrompt(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.promptService.GetDailyPrompt(r.Context(), time.Now())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, promptToDTO(prompt))
}
