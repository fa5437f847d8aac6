package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Common validation errors for Reminder
var (
	ErrEmptyReminderEmail   = errors.New("reminder email cannot be empty")
	ErrInvalidReminderTime  = errors.New("reminder time must be in HH:MM format")
	ErrInvalidReminderEmail = errors.New("reminder email is not a valid address")
)

// reminderEmailPattern is a deliberately loose address check: the mail
// transport is the final authority on deliverability.
var reminderEmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Reminder is a user's standing request to receive a daily practice
// reminder email at a fixed local time of day.
//
// The email address is the key: at most one reminder time exists per
// address, and setting a new time replaces the previous one
// (last-write-wins, no history kept). ReminderTime has minute resolution
// and no date or timezone component beyond server local time.
type Reminder struct {
	Email        string    `json:"email"`
	ReminderTime string    `json:"reminder_time"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewReminder creates a Reminder for the given address and "HH:MM" time of
// day. The time is normalized to zero-padded 24-hour form ("9:05" becomes
// "09:05"). Returns an error if validation fails.
func NewReminder(email, reminderTime string) (*Reminder, error) {
	normalized, err := NormalizeClockTime(reminderTime)
	if err != nil {
		return nil, err
	}

	reminder := &Reminder{
		Email:        strings.TrimSpace(email),
		ReminderTime: normalized,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := reminder.Validate(); err != nil {
		return nil, err
	}

	return reminder, nil
}

// Validate checks if the Reminder has valid data.
// Returns an error if any field fails validation.
func (r *Reminder) Validate() error {
	if r.Email == "" {
		return ErrEmptyReminderEmail
	}

	if !reminderEmailPattern.MatchString(r.Email) {
		return ErrInvalidReminderEmail
	}

	if _, err := NormalizeClockTime(r.ReminderTime); err != nil {
		return ErrInvalidReminderTime
	}

	return nil
}

// NormalizeClockTime parses a wall-clock time of day and returns it in
// canonical zero-padded "HH:MM" form. Returns ErrInvalidReminderTime if
// the input is not a valid 24-hour time.
func NormalizeClockTime(value string) (string, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return "", ErrInvalidReminderTime
	}
	return parsed.Format("15:04"), nil
}
