package api_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/scoring"
	"github.com/speakcoach/speakcoach-api/internal/service"
	"github.com/speakcoach/speakcoach-api/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubSessionStore is an in-memory store.SessionStore.
type stubSessionStore struct {
	sessions  []*domain.Session
	createErr error
}

func (s *stubSessionStore) Create(_ context.Context, session *domain.Session) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.sessions = append(s.sessions, session)
	return nil
}

func (s *stubSessionStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	for _, session := range s.sessions {
		if session.ID == id {
			return session, nil
		}
	}
	return nil, store.ErrSessionNotFound
}

func (s *stubSessionStore) List(_ context.Context) ([]*domain.Session, error) {
	return s.sessions, nil
}

// stubGenerator returns canned feedback for both generator interfaces.
type stubGenerator struct {
	feedback      string
	pronunciation string
	prompt        string
	err           error
}

func (g *stubGenerator) GenerateFeedback(_ context.Context, _ string, _ domain.LearnerProfile) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.feedback, nil
}

func (g *stubGenerator) GeneratePronunciationFeedback(_ context.Context, _ string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.pronunciation, nil
}

func (g *stubGenerator) GenerateSpeakingPrompt(_ context.Context) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.prompt, nil
}

// stubReminderStore is an in-memory store.ReminderStore.
type stubReminderStore struct {
	reminders map[string]*domain.Reminder
	upsertErr error
}

func newStubReminderStore() *stubReminderStore {
	return &stubReminderStore{reminders: make(map[string]*domain.Reminder)}
}

func (s *stubReminderStore) Upsert(_ context.Context, reminder *domain.Reminder) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.reminders[reminder.Email] = reminder
	return nil
}

func (s *stubReminderStore) GetByEmail(_ context.Context, email string) (*domain.Reminder, error) {
	if r, ok := s.reminders[email]; ok {
		return r, nil
	}
	return nil, store.ErrReminderNotFound
}

func (s *stubReminderStore) FindDue(_ context.Context, hhmm string) ([]*domain.Reminder, error) {
	var due []*domain.Reminder
	for _, r := range s.reminders {
		if r.ReminderTime == hhmm {
			due = append(due, r)
		}
	}
	return due, nil
}

// stubPromptStore is an in-memory store.PromptStore.
type stubPromptStore struct {
	prompts map[string]*domain.DailyPrompt
}

func newStubPromptStore() *stubPromptStore {
	return &stubPromptStore{prompts: make(map[string]*domain.DailyPrompt)}
}

func (s *stubPromptStore) Create(_ context.Context, prompt *domain.DailyPrompt) error {
	s.prompts[prompt.CreatedAt.Format("2006-01-02")] = prompt
	return nil
}

func (s *stubPromptStore) GetForDate(_ context.Context, date time.Time) (*domain.DailyPrompt, error) {
	if p, ok := s.prompts[date.Format("2006-01-02")]; ok {
		return p, nil
	}
	return nil, store.ErrPromptNotFound
}

// stubUserStore is an in-memory store.UserStore.
type stubUserStore struct {
	users map[string]*domain.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[string]*domain.User)}
}

func (s *stubUserStore) Create(_ context.Context, user *domain.User) error {
	if _, exists := s.users[user.Email]; exists {
		return store.ErrEmailExists
	}
	s.users[user.Email] = user
	return nil
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

func newSessionService(t *testing.T, sessions store.SessionStore, gen *stubGenerator) *service.SessionService {
	t.Helper()
	svc, err := service.NewSessionService(sessions, gen, scoring.NewEngine(nil), testLogger())
	require.NoError(t, err)
	return svc
}

func newReminderService(t *testing.T, reminders store.ReminderStore) *service.ReminderService {
	t.Helper()
	svc, err := service.NewReminderService(reminders, testLogger())
	require.NoError(t, err)
	return svc
}

func newPromptService(t *testing.T, prompts store.PromptStore, gen *stubGenerator) *service.PromptService {
	t.Helper()
	svc, err := service.NewPromptService(prompts, gen, testLogger())
	require.NoError(t, err)
	return svc
}

func newUserService(t *testing.T, users store.UserStore) *service.UserService {
	t.Helper()
	svc, err := service.NewUserService(users, bcrypt.MinCost, testLogger())
	require.NoError(t, err)
	return svc
}
