package api

import (
	"time"

	"github.com/speakcoach/speakcoach-api/internal/domain"
)

// LearnerProfileDTO carries the optional learner context accepted on
// requests and returned on user responses.
type LearnerProfileDTO struct {
	NativeLanguage string   `json:"native_language,omitempty"`
	CurrentLevel   string   `json:"current_level,omitempty"`
	TargetLevel    string   `json:"target_level,omitempty"`
	FocusAreas     []string `json:"focus_areas,omitempty"`
}

func (p LearnerProfileDTO) toDomain() domain.LearnerProfile {
	return domain.LearnerProfile{
		NativeLanguage: p.NativeLanguage,
		CurrentLevel:   p.CurrentLevel,
		TargetLevel:    p.TargetLevel,
		FocusAreas:     p.FocusAreas,
	}
}

func profileToDTO(p domain.LearnerProfile) LearnerProfileDTO {
	return LearnerProfileDTO{
		NativeLanguage: p.NativeLanguage,
		CurrentLevel:   p.CurrentLevel,
		TargetLevel:    p.TargetLevel,
		FocusAreas:     p.FocusAreas,
	}
}

// MetricsResponse represents the computed scores of a session.
type MetricsResponse struct {
	ReadabilityScore float64 `json:"readability_score"`
	FluencyScore     float64 `json:"fluency_score"`
	CEFRLevel        string  `json:"cefr_level"`
	WordsPerMinute   float64 `json:"words_per_minute"`
}

// SessionResponse represents the response data for a practice session.
type SessionResponse struct {
	ID         string          `json:"id"`
	Transcript string          `json:"transcript"`
	Prompt     string          `json:"prompt,omitempty"`
	Feedback   string          `json:"feedback,omitempty"`
	Metrics    MetricsResponse `json:"metrics"`
	CreatedAt  time.Time       `json:"created_at"`
}

func sessionToDTO(session *domain.Session) SessionResponse {
	return SessionResponse{
		ID:         session.ID.String(),
		Transcript: session.Transcript,
		Prompt:     session.Prompt,
		Feedback:   session.Feedback,
		Metrics: MetricsResponse{
			ReadabilityScore: session.Metrics.ReadabilityScore,
			FluencyScore:     session.Metrics.FluencyScore,
			CEFRLevel:        session.Metrics.CEFRLevel,
			WordsPerMinute:   session.Metrics.WordsPerMinute,
		},
		CreatedAt: session.CreatedAt,
	}
}

// ReminderResponse represents the response data for a reminder setting.
type ReminderResponse struct {
	Email        string    `json:"email"`
	ReminderTime string    `json:"reminder_time"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func reminderToDTO(reminder *domain.Reminder) ReminderResponse {
	return ReminderResponse{
		Email:        reminder.Email,
		ReminderTime: reminder.ReminderTime,
		UpdatedAt:    reminder.UpdatedAt,
	}
}

// PromptResponse represents the response data for the daily prompt.
type PromptResponse struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}

func promptToDTO(prompt *domain.DailyPrompt) PromptResponse {
	return PromptResponse{
		ID:        prompt.ID.String(),
		Prompt:    prompt.Prompt,
		CreatedAt: prompt.CreatedAt,
	}
}

// UserResponse represents the response data for a user. Credentials are
// never included.
type UserResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Profile   LearnerProfileDTO `json:"profile"`
	CreatedAt time.Time         `json:"created_at"`
}

func userToDTO(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Profile:   profileToDTO(user.Profile),
		CreatedAt: user.CreatedAt,
	}
}
