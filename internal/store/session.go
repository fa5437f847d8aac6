package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/speakcoach/speakcoach-api/internal/domain"
)

// SessionStore defines the interface for practice-session persistence.
//
// Sessions are append-only: there is deliberately no Update or Delete.
// History is immutable; corrections require a new session.
type SessionStore interface {
	// Create saves a new session as a single atomic insert.
	// Returns validation errors from the domain Session if data is
	// invalid.
	Create(ctx context.Context, session *domain.Session) error

	// GetByID retrieves a session by its unique ID.
	// Returns ErrSessionNotFound if the session does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)

	// List retrieves all sessions, newest first.
	List(ctx context.Context) ([]*domain.Session, error)
}
