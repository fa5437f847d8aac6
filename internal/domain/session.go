package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CEFRUnknown is the level reported when the AI feedback carries no
// recognizable CEFR annotation.
const CEFRUnknown = "Unknown"

// Common validation errors for Session
var (
	ErrEmptySessionID         = errors.New("session ID cannot be empty")
	ErrEmptyTranscript        = errors.New("transcript cannot be empty")
	ErrFluencyScoreOutOfRange = errors.New("fluency score must be between 0 and 10")
	ErrInvalidCEFRLevel       = errors.New("invalid CEFR level")
)

// validCEFRLevels enumerates the six CEFR proficiency levels plus the
// "Unknown" fallback used when extraction finds no annotation.
var validCEFRLevels = map[string]bool{
	"A1": true, "A2": true,
	"B1": true, "B2": true,
	"C1": true, "C2": true,
	CEFRUnknown: true,
}

// SessionMetrics holds the scores computed for a single practice session.
// It is produced by the scoring engine and folded into a Session at
// creation time.
type SessionMetrics struct {
	// ReadabilityScore is the Flesch-Kincaid grade level of the transcript.
	// It may be negative for very short or simple input.
	ReadabilityScore float64 `json:"readability_score"`

	// FluencyScore is the 0-10 score extracted from the AI feedback text.
	// Zero when the feedback carried no recognizable score annotation.
	FluencyScore float64 `json:"fluency_score"`

	// CEFRLevel is one of A1, A2, B1, B2, C1, C2, or "Unknown".
	CEFRLevel string `json:"cefr_level"`

	// WordsPerMinute is the speaking rate derived from the transcript word
	// count and the session duration.
	WordsPerMinute float64 `json:"words_per_minute"`
}

// Session represents one completed speaking-practice session: the raw
// transcript, the AI coaching feedback obtained for it, and the metrics
// computed from both.
//
// A Session is created exactly once, as a single atomic insert, and is
// never mutated afterwards. Corrections require a new session; history is
// immutable.
type Session struct {
	ID         uuid.UUID `json:"id"`
	Transcript string    `json:"transcript"`
	Prompt     string    `json:"prompt,omitempty"`
	Feedback   string    `json:"feedback,omitempty"`
	Metrics    SessionMetrics
	CreatedAt  time.Time `json:"created_at"`
}

// NewSession creates a new Session from a transcript, the practice prompt
// used (may be empty), the raw AI feedback text (may be empty when the
// generator failed or was skipped), and the computed metrics.
// Returns an error if validation fails.
func NewSession(transcript, prompt, feedback string, metrics SessionMetrics) (*Session, error) {
	session := &Session{
		ID:         uuid.New(),
		Transcript: transcript,
		Prompt:     prompt,
		Feedback:   feedback,
		Metrics:    metrics,
		CreatedAt:  time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the Session has valid data.
// Returns an error if any field fails validation.
func (s *Session) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySessionID
	}

	if s.Transcript == "" {
		return ErrEmptyTranscript
	}

	if s.Metrics.FluencyScore < 0 || s.Metrics.FluencyScore > 10 {
		return ErrFluencyScoreOutOfRange
	}

	if !validCEFRLevels[s.Metrics.CEFRLevel] {
		return ErrInvalidCEFRLevel
	}

	return nil
}
