package service_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/speakcoach/speakcoach-api/internal/domain"
	"github.com/speakcoach/speakcoach-api/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSessionStore is an in-memory store.SessionStore.
type fakeSessionStore struct {
	sessions  []*domain.Session
	createErr error
	getErr    error
	listErr   error
}

func (f *fakeSessionStore) Create(_ context.Context, session *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, store.ErrSessionNotFound
}

func (f *fakeSessionStore) List(_ context.Context) ([]*domain.Session, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sessions, nil
}

// fakeFeedbackGenerator returns canned feedback or a canned error.
type fakeFeedbackGenerator struct {
	feedback         string
	pronunciation    string
	err              error
	pronunciationErr error
	lastTranscript   string
	lastProfile      domain.LearnerProfile
}

func (f *fakeFeedbackGenerator) GenerateFeedback(
	_ context.Context,
	transcript string,
	profile domain.LearnerProfile,
) (string, error) {
	f.lastTranscript = transcript
	f.lastProfile = profile
	if f.err != nil {
		return "", f.err
	}
	return f.feedback, nil
}

func (f *fakeFeedbackGenerator) GeneratePronunciationFeedback(
	_ context.Context,
	transcript string,
) (string, error) {
	f.lastTranscript = transcript
	if f.pronunciationErr != nil {
		return "", f.pronunciationErr
	}
	return f.pronunciation, nil
}

// fakePromptGenerator returns a canned daily topic.
type fakePromptGenerator struct {
	prompt string
	err    error
	calls  int
}

func (f *fakePromptGenerator) GenerateSpeakingPrompt(_ context.Context) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.prompt, nil
}

// fakeReminderStore is an in-memory store.ReminderStore keyed by email.
type fakeReminderStore struct {
	reminders map[string]*domain.Reminder
	upsertErr error
	getErr    error
	findErr   error
}

func newFakeReminderStore() *fakeReminderStore {
	return &fakeReminderStore{reminders: make(map[string]*domain.Reminder)}
}

func (f *fakeReminderStore) Upsert(_ context.Context, reminder *domain.Reminder) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.reminders[reminder.Email] = reminder
	return nil
}

func (f *fakeReminderStore) GetByEmail(_ context.Context, email string) (*domain.Reminder, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if r, ok := f.reminders[email]; ok {
		return r, nil
	}
	return nil, store.ErrReminderNotFound
}

func (f *fakeReminderStore) FindDue(_ context.Context, hhmm string) ([]*domain.Reminder, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var due []*domain.Reminder
	for _, r := range f.reminders {
		if r.ReminderTime == hhmm {
			due = append(due, r)
		}
	}
	return due, nil
}

// fakePromptStore is an in-memory store.PromptStore keyed by calendar day.
type fakePromptStore struct {
	prompts   map[string]*domain.DailyPrompt
	createErr error
	getErr    error
}

func newFakePromptStore() *fakePromptStore {
	return &fakePromptStore{prompts: make(map[string]*domain.DailyPrompt)}
}

func (f *fakePromptStore) Create(_ context.Context, prompt *domain.DailyPrompt) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.prompts[prompt.CreatedAt.Format("2006-01-02")] = prompt
	return nil
}

func (f *fakePromptStore) GetForDate(_ context.Context, date time.Time) (*domain.DailyPrompt, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if p, ok := f.prompts[date.Format("2006-01-02")]; ok {
		return p, nil
	}
	return nil, store.ErrPromptNotFound
}

// fakeUserStore is an in-memory store.UserStore keyed by email.
type fakeUserStore struct {
	users     map[string]*domain.User
	createErr error
	getErr    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}
