package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/platform/logger"
	"github.com/speakcoach/speakcoach-api/internal/store"
)

// PostgresPromptStore implements the store.PromptStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPromptStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPromptStore creates a new PostgreSQL implementation of the
// PromptStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// a default logger will be used.
func NewPostgresPromptStore(db store.DBTX, logger *slog.Logger) *PostgresPromptStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPromptStore{
		db:     db,
		logger: logger.With(slog.String("component", "prompt_store")),
	}
}

// Ensure PostgresPromptStore implements store.PromptStore interface
var _ store.PromptStore = (*PostgresPromptStore)(nil)

// Create implements store.PromptStore.Create
// It saves a new daily prompt to the database.
func (s *PostgresPromptStore) Create(ctx context.Context, prompt *domain.DailyPrompt) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := prompt.Validate(); err != nil {
		log.Warn("prompt validation failed during create",
			slog.String("error", err.Error()),
			slog.String("prompt_id", prompt.ID.String()))
		return err
	}

	query := `
		INSERT INTO daily_prompts (id, prompt, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, prompt.ID, prompt.Prompt, prompt.CreatedAt)
	if err != nil {
		log.Error("failed to create prompt",
			slog.String("error", err.Error()),
			slog.String("prompt_id", prompt.ID.String()))
		return err
	}

	log.Info("daily prompt created", slog.String("prompt_id", prompt.ID.String()))
	return nil
}

// GetForDate implements store.PromptStore.GetForDate
// It retrieves the newest prompt created on the given calendar date.
// Returns store.ErrPromptNotFound if none exists.
func (s *PostgresPromptStore) GetForDate(ctx context.Context, date time.Time) (*domain.DailyPrompt, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, prompt, created_at
		FROM daily_prompts
		WHERE created_at::date = $1::date
		ORDER BY created_at DESC
		LIMIT 1
	`

	var prompt domain.DailyPrompt
	err := s.db.QueryRowContext(ctx, query, date).Scan(
		&prompt.ID,
		&prompt.Prompt,
		&prompt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no prompt for date",
				slog.String("date", date.Format("2006-01-02")))
			return nil, store.ErrPromptNotFound
		}

		log.Error("failed to get prompt for date",
			slog.String("error", err.Error()),
			slog.String("date", date.Format("2006-01-02")))
		return nil, err
	}

	return &prompt, nil
}
