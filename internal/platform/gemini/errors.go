package gemini

import "errors"

// Package-specific errors.
var (
	// ErrEmptyTranscript is returned when feedback is requested for an
	// empty transcript.
	ErrEmptyTranscript = errors.New("transcript cannot be empty")
)
