package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyUserEmail   = errors.New("user email cannot be empty")
	ErrEmptyUserName    = errors.New("user name cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword    = errors.New("password cannot be empty")
)

// LearnerProfile carries the optional self-reported learning context used
// to personalize AI coaching feedback. All fields may be empty.
type LearnerProfile struct {
	NativeLanguage string   `json:"native_language,omitempty"`
	CurrentLevel   string   `json:"current_level,omitempty"`
	TargetLevel    string   `json:"target_level,omitempty"`
	FocusAreas     []string `json:"focus_areas,omitempty"`
}

// IsZero reports whether the profile carries no information at all.
func (p LearnerProfile) IsZero() bool {
	return p.NativeLanguage == "" && p.CurrentLevel == "" &&
		p.TargetLevel == "" && len(p.FocusAreas) == 0
}

// User represents a registered learner. The credential is stored only as a
// bcrypt hash; login and session mechanics live outside this service.
type User struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Password       string         `json:"-"` // Plaintext, only populated during registration
	HashedPassword string         `json:"-"` // Never expose the hash in JSON
	Profile        LearnerProfile `json:"profile"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// NewUser creates a new User with the given name, email and plaintext
// password. The caller is responsible for hashing the password before the
// user is stored. Returns an error if validation fails.
func NewUser(name, email, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Name == "" {
		return ErrEmptyUserName
	}

	if u.Email == "" {
		return ErrEmptyUserEmail
	}

	if !reminderEmailPattern.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		// bcrypt rejects inputs longer than 72 bytes, so cap it here.
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
