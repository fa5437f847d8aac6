package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/platform/logger"
	"github.com/speakcoach/speakcoach-api/internal/store"
)

// ReminderService manages per-address daily reminder settings.
type ReminderService struct {
	reminders store.ReminderStore
	logger    *slog.Logger
}

// NewReminderService creates a ReminderService. Returns an error if the
// store is nil; a nil logger selects the default.
func NewReminderService(reminders store.ReminderStore, logger *slog.Logger) (*ReminderService, error) {
	if reminders == nil {
		return nil, errors.New("reminder store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReminderService{
		reminders: reminders,
		logger:    logger.With(slog.String("component", "reminder_service")),
	}, nil
}

// SetReminder stores the daily reminder time for the address, replacing
// any previous setting (last-write-wins). The time is normalized to
// zero-padded "HH:MM" form. Domain validation errors pass through
// unwrapped so the API layer can report them as bad requests.
func (s *ReminderService) SetReminder(ctx context.Context, email, reminderTime string) (*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	reminder, err := domain.NewReminder(email, reminderTime)
	if err != nil {
		return nil, err
	}

	if err := s.reminders.Upsert(ctx, reminder); err != nil {
		return nil, NewServiceError("reminder", "set_reminder", "failed to save reminder", err)
	}

	log.Info("reminder time set",
		slog.String("email", reminder.Email),
		slog.String("reminder_time", reminder.ReminderTime))

	return reminder, nil
}

// GetReminder retrieves the reminder for the address.
// Returns ErrReminderNotFound if none is set.
func (s *ReminderService) GetReminder(ctx context.Context, email string) (*domain.Reminder, error) {
	reminder, err := s.reminders.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrReminderNotFound
		}
		return nil, NewServiceError("reminder", "get_reminder", "failed to load reminder", err)
	}

	return reminder, nil
}
