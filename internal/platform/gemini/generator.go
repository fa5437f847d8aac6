package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/speakcoach/speakcoach-api/internal/config"
	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/generation"
)

// GeminiGenerator implements the generation.FeedbackGenerator and
// generation.PromptGenerator interfaces using Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

// Ensure GeminiGenerator implements the generation interfaces
var (
	_ generation.FeedbackGenerator = (*GeminiGenerator)(nil)
	_ generation.PromptGenerator   = (*GeminiGenerator)(nil)
)

// NewGeminiGenerator creates a new GeminiGenerator with the provided
// dependencies. The context is used for client initialization and can be
// used for cancellation. Returns an error if the configuration is invalid
// or the client cannot be created.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger: logger.With(slog.String("component", "gemini_generator")),
		config: cfg,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// GenerateFeedback implements generation.FeedbackGenerator.GenerateFeedback
// It renders the coaching prompt for the transcript and profile, calls
// the model, and returns the raw feedback text.
func (g *GeminiGenerator) GenerateFeedback(
	ctx context.Context,
	transcript string,
	profile domain.LearnerProfile,
) (string, error) {
	prompt, err := buildFeedbackPrompt(transcript, profile)
	if err != nil {
		return "", err
	}

	return g.callWithRetry(ctx, prompt)
}

// GeneratePronunciationFeedback implements
// generation.FeedbackGenerator.GeneratePronunciationFeedback
func (g *GeminiGenerator) GeneratePronunciationFeedback(
	ctx context.Context,
	transcript string,
) (string, error) {
	prompt, err := buildPronunciationPrompt(transcript)
	if err != nil {
		return "", err
	}

	return g.callWithRetry(ctx, prompt)
}

// GenerateSpeakingPrompt implements
// generation.PromptGenerator.GenerateSpeakingPrompt
func (g *GeminiGenerator) GenerateSpeakingPrompt(ctx context.Context) (string, error) {
	return g.callWithRetry(ctx, speakingPromptText)
}

// callWithRetry calls the Gemini API with exponential backoff and jitter.
// API transport errors are treated as transient and retried up to
// config.MaxRetries times; an empty or safety-blocked response is
// permanent and returned immediately.
func (g *GeminiGenerator) callWithRetry(ctx context.Context, prompt string) (string, error) {
	maxRetries := g.config.MaxRetries
	baseDelaySeconds := g.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		attemptNum := attempt + 1
		g.logger.DebugContext(ctx, "making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1,
			"model", g.model)

		resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err == nil {
			text, perr := extractText(resp)
			if perr != nil {
				// The model answered but the response is unusable.
				// Retrying the same prompt will not help.
				g.logger.WarnContext(ctx, "unusable Gemini response, not retrying",
					"attempt", attemptNum,
					"error", perr)
				return "", perr
			}

			g.logger.InfoContext(ctx, "Gemini API call successful",
				"attempt", attemptNum,
				"response_length", len(text))
			return text, nil
		}

		lastErr = err
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		if attempt >= maxRetries {
			break
		}

		// delay = baseDelay * (2^attempt) * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			g.logger.WarnContext(ctx, "API call cancelled during retry delay",
				"attempt", attemptNum)
			return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, ctx.Err())
		}
	}

	return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
		generation.ErrGenerationFailed, maxRetries, lastErr)
}

// extractText pulls the generated text out of a response, mapping the
// empty and safety-blocked cases to generation.ErrInvalidResponse.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrInvalidResponse)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	return text, nil
}
