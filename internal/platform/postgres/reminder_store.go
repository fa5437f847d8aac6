package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/platform/logger"
	"github.com/speakcoach/speakcoach-api/internal/store"
)

// PostgresReminderStore implements the store.ReminderStore interface
// using a PostgreSQL database as the storage backend.
//
// The reminder_time column has the TIME type; it is read back through
// to_char so the application only ever sees canonical "HH24:MI" strings.
type PostgresReminderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReminderStore creates a new PostgreSQL implementation of the
// ReminderStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller. If
// logger is nil, a default logger will be used.
func NewPostgresReminderStore(db store.DBTX, logger *slog.Logger) *PostgresReminderStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReminderStore{
		db:     db,
		logger: logger.With(slog.String("component", "reminder_store")),
	}
}

// Ensure PostgresReminderStore implements store.ReminderStore interface
var _ store.ReminderStore = (*PostgresReminderStore)(nil)

// Upsert implements store.ReminderStore.Upsert
// It saves the reminder, replacing any existing reminder time for the
// same email address. Returns validation errors from the domain Reminder
// if data is invalid.
func (s *PostgresReminderStore) Upsert(ctx context.Context, reminder *domain.Reminder) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reminder.Validate(); err != nil {
		log.Warn("reminder validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("email", reminder.Email))
		return err
	}

	query := `
		INSERT INTO reminders (email, reminder_time, updated_at)
		VALUES ($1, $2::time, $3)
		ON CONFLICT (email) DO UPDATE
		SET reminder_time = EXCLUDED.reminder_time,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		reminder.Email,
		reminder.ReminderTime,
		reminder.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert reminder",
			slog.String("error", err.Error()),
			slog.String("email", reminder.Email))
		return err
	}

	log.Info("reminder saved",
		slog.String("email", reminder.Email),
		slog.String("reminder_time", reminder.ReminderTime))
	return nil
}

// GetByEmail implements store.ReminderStore.GetByEmail
// Returns store.ErrReminderNotFound if no reminder exists for the
// address.
func (s *PostgresReminderStore) GetByEmail(ctx context.Context, email string) (*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT email, to_char(reminder_time, 'HH24:MI'), updated_at
		FROM reminders
		WHERE email = $1
	`

	var reminder domain.Reminder
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&reminder.Email,
		&reminder.ReminderTime,
		&reminder.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("reminder not found", slog.String("email", email))
			return nil, store.ErrReminderNotFound
		}

		log.Error("failed to get reminder by email",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, err
	}

	return &reminder, nil
}

// FindDue implements store.ReminderStore.FindDue
// It returns every reminder whose stored time matches the given "HH:MM"
// slot. The comparison happens in SQL so the minute truncation is done
// once, by the database.
func (s *PostgresReminderStore) FindDue(ctx context.Context, hhmm string) ([]*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT email, to_char(reminder_time, 'HH24:MI'), updated_at
		FROM reminders
		WHERE to_char(reminder_time, 'HH24:MI') = $1
	`

	rows, err := s.db.QueryContext(ctx, query, hhmm)
	if err != nil {
		log.Error("failed to query due reminders",
			slog.String("error", err.Error()),
			slog.String("slot", hhmm))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var reminders []*domain.Reminder
	for rows.Next() {
		var reminder domain.Reminder
		if err := rows.Scan(
			&reminder.Email,
			&reminder.ReminderTime,
			&reminder.UpdatedAt,
		); err != nil {
			log.Error("failed to scan reminder row", slog.String("error", err.Error()))
			return nil, err
		}
		reminders = append(reminders, &reminder)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating reminder rows", slog.String("error", err.Error()))
		return nil, err
	}

	return reminders, nil
}
