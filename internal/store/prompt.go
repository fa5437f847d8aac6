package store

import (
	"context"
	"time"

	"github.com/speakcoach/speakcoach-api/internal/domain"
)

// PromptStore defines the interface for daily-prompt persistence.
type PromptStore interface {
	// Create saves a new daily prompt.
	Create(ctx context.Context, prompt *domain.DailyPrompt) error

	// GetForDate retrieves the prompt created on the given calendar date
	// (server local time). Returns ErrPromptNotFound if none exists.
	GetForDate(ctx context.Context, date time.Time) (*domain.DailyPrompt, error)
}
