package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for DailyPrompt
var (
	ErrEmptyPromptID   = errors.New("prompt ID cannot be empty")
	ErrEmptyPromptText = errors.New("prompt text cannot be empty")
)

// DailyPrompt is the speaking-practice topic generated once per calendar
// day and served to every user until the next day begins.
type DailyPrompt struct {
	ID        uuid.UUID `json:"id"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDailyPrompt creates a DailyPrompt with the given text.
// Returns an error if validation fails.
func NewDailyPrompt(prompt string) (*DailyPrompt, error) {
	p := &DailyPrompt{
		ID:        uuid.New(),
		Prompt:    prompt,
		CreatedAt: time.Now().UTC(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the DailyPrompt has valid data.
// Returns an error if any field fails validation.
func (p *DailyPrompt) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPromptID
	}

	if p.Prompt == "" {
		return ErrEmptyPromptText
	}

	return nil
}
