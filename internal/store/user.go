package store

import (
	"context"

	"github.com/speakcoach/speakcoach-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The caller must have hashed
	// the password already; the plaintext Password field is never stored.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user contains the hashed password, never a plaintext
	// one.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
