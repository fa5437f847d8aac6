package generation

import (
	"context"

	"github.com/speakcoach/speakcoach-api/internal/domain"
)

// FeedbackGenerator defines the interface for obtaining AI coaching
// feedback on a spoken transcript. This interface is the boundary between
// the application core and the external LLM service.
//
// The generator may be slow or unavailable; callers must treat a timeout
// or error as "no feedback", never as a fatal session-save failure.
type FeedbackGenerator interface {
	// GenerateFeedback produces free-form coaching feedback for the
	// transcript. The returned prose is expected, but not guaranteed, to
	// contain "Fluency Score:" and "CEFR Level:" annotations; extraction
	// of those markers is the scoring engine's concern. The profile
	// personalizes the feedback and may be the zero value.
	GenerateFeedback(ctx context.Context, transcript string, profile domain.LearnerProfile) (string, error)

	// GeneratePronunciationFeedback produces feedback focused solely on
	// likely pronunciation issues in the transcript.
	GeneratePronunciationFeedback(ctx context.Context, transcript string) (string, error)
}

// PromptGenerator defines the interface for generating a daily speaking
// practice topic.
type PromptGenerator interface {
	// GenerateSpeakingPrompt produces a short, friendly practice topic.
	GenerateSpeakingPrompt(ctx context.Context) (string, error)
}
