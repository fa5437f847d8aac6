package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/speakcoach/speakcoach-api/internal/api"
	apiMiddleware "github.com/speakcoach/speakcoach-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	sessionHandler := api.NewSessionHandler(app.sessionService)
	reminderHandler := api.NewReminderHandler(app.reminderService)
	promptHandler := api.NewPromptHandler(app.promptService)
	userHandler := api.NewUserHandler(app.userService)

	r.Route("/api", func(r chi.Router) {
		// Practice sessions
		r.Post("/sessions", sessionHandler.CreateSession)
		r.Get("/sessions", sessionHandler.ListSessions)
		r.Get("/sessions/{id}", sessionHandler.GetSession)

		// Pronunciation-only feedback
		r.Post("/feedback/pronunciation", sessionHandler.PronunciationFeedback)

		// Daily prompt
		r.Get("/prompt/daily", promptHandler.GetDailyPrompt)

		// Reminders
		r.Post("/reminders", reminderHandler.SetReminder)
		r.Get("/reminders", reminderHandler.GetReminder)

		// Users
		r.Post("/users", userHandler.RegisterUser)
		r.Get("/users/{email}", userHandler.GetUser)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
