package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/service"
	"github.com/speakcoach/speakcoach-api/internal/store"
)

func newUserService(t *testing.T, users *fakeUserStore) *service.UserService {
	t.Helper()
	svc, err := service.NewUserService(users, bcrypt.MinCost, testLogger())
	require.NoError(t, err)
	return svc
}

func TestRegisterHashesPassword(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := newUserService(t, users)

	profile := domain.LearnerProfile{NativeLanguage: "Korean", TargetLevel: "C1"}
	user, err := svc.Register(context.Background(), "Ana", "ana@example.com", "correct horse battery", profile)
	require.NoError(t, err)

	assert.Empty(t, user.Password, "plaintext must be discarded")
	require.NotEmpty(t, user.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(user.HashedPassword), []byte("correct horse battery")))
	assert.Equal(t, profile, user.Profile)

	stored, ok := users.users["ana@example.com"]
	require.True(t, ok)
	assert.Empty(t, stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := newUserService(t, users)

	_, err := svc.Register(context.Background(), "Ana", "ana@example.com", "password-one", domain.LearnerProfile{})
	require.NoError(t, err)

	users.createErr = store.ErrEmailExists
	_, err = svc.Register(context.Background(), "Other", "ana@example.com", "password-two", domain.LearnerProfile{})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegisterValidationErrorsPassThrough(t *testing.T) {
	t.Parallel()

	svc := newUserService(t, newFakeUserStore())

	_, err := svc.Register(context.Background(), "Ana", "ana@example.com", "short", domain.LearnerProfile{})
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)

	_, err = svc.Register(context.Background(), "", "ana@example.com", "long enough password", domain.LearnerProfile{})
	assert.ErrorIs(t, err, domain.ErrEmptyUserName)
}

func TestGetByEmail(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	svc := newUserService(t, users)

	created, err := svc.Register(context.Background(), "Ana", "ana@example.com", "long enough password", domain.LearnerProfile{})
	require.NoError(t, err)

	got, err := svc.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
