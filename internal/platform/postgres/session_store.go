package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/platform/logger"
	"github.com/speakcoach/speakcoach-api/internal/store"
)

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// a default logger will be used.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

// Create implements store.SessionStore.Create
// It saves a new practice session to the database as a single insert.
// Returns validation errors from the domain Session if data is invalid.
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.Session) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return err
	}

	query := `
		INSERT INTO practice_sessions
			(id, transcript, prompt, feedback,
			 readability_score, fluency_score, cefr_level, words_per_minute,
			 created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.Transcript,
		session.Prompt,
		session.Feedback,
		session.Metrics.ReadabilityScore,
		session.Metrics.FluencyScore,
		session.Metrics.CEFRLevel,
		session.Metrics.WordsPerMinute,
		session.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return err
	}

	log.Info("session created successfully",
		slog.String("session_id", session.ID.String()),
		slog.String("cefr_level", session.Metrics.CEFRLevel))
	return nil
}

// GetByID implements store.SessionStore.GetByID
// It retrieves a session by its unique ID.
// Returns store.ErrSessionNotFound if the session does not exist.
func (s *PostgresSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving session by ID", slog.String("session_id", id.String()))

	query := `
		SELECT id, transcript, prompt, feedback,
		       readability_score, fluency_score, cefr_level, words_per_minute,
		       created_at
		FROM practice_sessions
		WHERE id = $1
	`

	var session domain.Session
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.Transcript,
		&session.Prompt,
		&session.Feedback,
		&session.Metrics.ReadabilityScore,
		&session.Metrics.FluencyScore,
		&session.Metrics.CEFRLevel,
		&session.Metrics.WordsPerMinute,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("session not found", slog.String("session_id", id.String()))
			return nil, store.ErrSessionNotFound
		}

		log.Error("failed to get session by ID",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return nil, err
	}

	return &session, nil
}

// List implements store.SessionStore.List
// It retrieves all sessions ordered newest first.
func (s *PostgresSessionStore) List(ctx context.Context) ([]*domain.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, transcript, prompt, feedback,
		       readability_score, fluency_score, cefr_level, words_per_minute,
		       created_at
		FROM practice_sessions
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list sessions", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var sessions []*domain.Session
	for rows.Next() {
		var session domain.Session
		if err := rows.Scan(
			&session.ID,
			&session.Transcript,
			&session.Prompt,
			&session.Feedback,
			&session.Metrics.ReadabilityScore,
			&session.Metrics.FluencyScore,
			&session.Metrics.CEFRLevel,
			&session.Metrics.WordsPerMinute,
			&session.CreatedAt,
		); err != nil {
			log.Error("failed to scan session row", slog.String("error", err.Error()))
			return nil, err
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating session rows", slog.String("error", err.Error()))
		return nil, err
	}

	return sessions, nil
}
