package store

import (
	"context"

	"github.com/speakcoach/speakcoach-api/internal/domain"
)

// ReminderStore defines the interface for reminder persistence.
type ReminderStore interface {
	// Upsert saves the reminder, replacing any existing reminder time for
	// the same email address (last-write-wins, no history kept).
	// Returns validation errors from the domain Reminder if data is
	// invalid.
	Upsert(ctx context.Context, reminder *domain.Reminder) error

	// GetByEmail retrieves the reminder for the given address.
	// Returns ErrReminderNotFound if no reminder exists.
	GetByEmail(ctx context.Context, email string) (*domain.Reminder, error)

	// FindDue returns every reminder whose stored time, truncated to
	// minute resolution, equals hhmm ("HH:MM", 24-hour server local
	// time).
	FindDue(ctx context.Context, hhmm string) ([]*domain.Reminder, error)
}
