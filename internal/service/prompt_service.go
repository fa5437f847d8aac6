package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/generation"
	"github.com/speakcoach/speakcoach-api/internal/platform/logger"
	"github.com/speakcoach/speakcoach-api/internal/store"
)

// FallbackPrompt is served when a prompt must be generated and the
// generator is unavailable. A learner always gets a topic.
const FallbackPrompt = "Describe your favorite place in your city and explain why you like going there."

// PromptService serves the daily speaking prompt, generating and caching
// one per calendar day.
type PromptService struct {
	prompts   store.PromptStore
	generator generation.PromptGenerator
	logger    *slog.Logger
}

// NewPromptService creates a PromptService. Returns an error if any
// required dependency is nil; a nil logger selects the default.
func NewPromptService(
	prompts store.PromptStore,
	generator generation.PromptGenerator,
	logger *slog.Logger,
) (*PromptService, error) {
	if prompts == nil {
		return nil, errors.New("prompt store cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("prompt generator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PromptService{
		prompts:   prompts,
		generator: generator,
		logger:    logger.With(slog.String("component", "prompt_service")),
	}, nil
}

// GetDailyPrompt returns the speaking prompt for the calendar day of the
// given time, generating and storing one on first request of the day.
//
// The degradation order keeps the endpoint availability-first: a stored
// prompt wins; otherwise a freshly generated one; if generation fails,
// the static fallback. A failure to persist the new prompt is logged but
// the prompt is still served, so the same day may regenerate on a later
// request rather than error out.
func (s *PromptService) GetDailyPrompt(ctx context.Context, now time.Time) (*domain.DailyPrompt, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.prompts.GetForDate(ctx, now)
	if err == nil {
		return existing, nil
	}
	if !store.IsNotFoundError(err) {
		return nil, NewServiceError("prompt", "get_daily_prompt", "failed to load prompt", err)
	}

	text, err := s.generator.GenerateSpeakingPrompt(ctx)
	if err != nil {
		log.Warn("prompt generation failed, serving fallback prompt",
			slog.String("error", err.Error()))
		text = FallbackPrompt
	}

	prompt, err := domain.NewDailyPrompt(text)
	if err != nil {
		return nil, NewServiceError("prompt", "get_daily_prompt", "invalid prompt data", err)
	}

	if err := s.prompts.Create(ctx, prompt); err != nil {
		log.Error("failed to store daily prompt, serving it unsaved",
			slog.String("error", err.Error()),
			slog.String("prompt_id", prompt.ID.String()))
	}

	return prompt, nil
}
