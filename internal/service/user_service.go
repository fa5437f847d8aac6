package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/platform/logger"
	"github.com/speakcoach/speakcoach-api/internal/store"
)

// UserService manages learner registration and profiles. Login and
// session mechanics are out of scope; the service only guarantees that
// credentials are stored as bcrypt hashes.
type UserService struct {
	users      store.UserStore
	bcryptCost int
	logger     *slog.Logger
}

// NewUserService creates a UserService. A non-positive bcryptCost selects
// the bcrypt default. Returns an error if the store is nil; a nil logger
// selects the default.
func NewUserService(users store.UserStore, bcryptCost int, logger *slog.Logger) (*UserService, error) {
	if users == nil {
		return nil, errors.New("user store cannot be nil")
	}
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserService{
		users:      users,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "user_service")),
	}, nil
}

// Register creates a new learner account. The plaintext password is
// hashed with bcrypt and discarded before the user reaches the store.
// Returns ErrEmailTaken if the address is already registered; domain
// validation errors pass through unwrapped.
func (s *UserService) Register(
	ctx context.Context,
	name, email, password string,
	profile domain.LearnerProfile,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, err
	}
	user.Profile = profile

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, NewServiceError("user", "register", "failed to hash password", err)
	}
	user.HashedPassword = string(hash)
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			return nil, ErrEmailTaken
		}
		return nil, NewServiceError("user", "register", "failed to save user", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))

	return user, nil
}

// GetByEmail retrieves a learner by email address.
// Returns ErrUserNotFound if no account exists.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, NewServiceError("user", "get_by_email", "failed to load user", err)
	}

	return user, nil
}
