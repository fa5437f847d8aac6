package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/generation"
	"github.com/speakcoach/speakcoach-api/internal/platform/logger"
	"github.com/speakcoach/speakcoach-api/internal/scoring"
	"github.com/speakcoach/speakcoach-api/internal/store"
)

// SessionService orchestrates the recording of a practice session:
// obtaining AI feedback, computing metrics, and persisting the result.
type SessionService struct {
	sessions  store.SessionStore
	generator generation.FeedbackGenerator
	engine    *scoring.Engine
	logger    *slog.Logger
}

// NewSessionService creates a SessionService. Returns an error if any
// required dependency is nil; a nil logger selects the default.
func NewSessionService(
	sessions store.SessionStore,
	generator generation.FeedbackGenerator,
	engine *scoring.Engine,
	logger *slog.Logger,
) (*SessionService, error) {
	if sessions == nil {
		return nil, errors.New("session store cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("feedback generator cannot be nil")
	}
	if engine == nil {
		return nil, errors.New("scoring engine cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionService{
		sessions:  sessions,
		generator: generator,
		engine:    engine,
		logger:    logger.With(slog.String("component", "session_service")),
	}, nil
}

// CreateSession records a completed practice session.
//
// Feedback generation is fail-soft: when the generator errors out, the
// session is still scored and saved with empty feedback and the default
// fluency score and CEFR level, because the learner's transcript must
// never be lost to an LLM outage. A persistence failure, by contrast, is
// fatal and returned to the caller.
func (s *SessionService) CreateSession(
	ctx context.Context,
	transcript, prompt string,
	durationSeconds float64,
	profile domain.LearnerProfile,
) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(transcript) == "" {
		return nil, domain.ErrEmptyTranscript
	}

	feedback, err := s.generator.GenerateFeedback(ctx, transcript, profile)
	if err != nil {
		log.Warn("feedback generation failed, saving session without feedback",
			slog.String("error", err.Error()))
		feedback = ""
	}

	metrics := s.engine.ComputeMetrics(transcript, feedback, durationSeconds)

	session, err := domain.NewSession(transcript, prompt, feedback, metrics)
	if err != nil {
		return nil, NewServiceError("session", "create_session", "invalid session data", err)
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, NewServiceError("session", "create_session", "failed to save session", err)
	}

	log.Info("practice session recorded",
		slog.String("session_id", session.ID.String()),
		slog.Float64("fluency_score", session.Metrics.FluencyScore),
		slog.String("cefr_level", session.Metrics.CEFRLevel))

	return session, nil
}

// GetSession retrieves a session by ID.
// Returns ErrSessionNotFound if it does not exist.
func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, NewServiceError("session", "get_session", "failed to load session", err)
	}

	return session, nil
}

// ListSessions retrieves the full practice history, newest first.
func (s *SessionService) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, NewServiceError("session", "list_sessions", "failed to list sessions", err)
	}

	return sessions, nil
}

// GetPronunciationFeedback obtains pronunciation-focused feedback for a
// transcript without recording a session. Unlike session creation, a
// generation failure here is returned to the caller: the feedback is the
// whole point of the call.
func (s *SessionService) GetPronunciationFeedback(ctx context.Context, transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", domain.ErrEmptyTranscript
	}

	feedback, err := s.generator.GeneratePronunciationFeedback(ctx, transcript)
	if err != nil {
		return "", NewServiceError("session", "pronunciation_feedback",
			"failed to generate pronunciation feedback", err)
	}

	return feedback, nil
}
