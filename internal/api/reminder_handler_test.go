package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speakcoach/speakcoach-api/internal/api"
)

func reminderRouter(t *testing.T, reminders *stubReminderStore) *chi.Mux {
	t.Helper()
	handler := api.NewReminderHandler(newReminderService(t, reminders))

	r := chi.NewRouter()
	r.Post("/api/reminders", handler.SetReminder)
	r.Get("/api/reminders", handler.GetReminder)
	return r
}

func TestSetReminderEndpoint(t *testing.T) {
	t.Parallel()

	reminders := newStubReminderStore()
	router := reminderRouter(t, reminders)

	body := `{"email": "a@example.com", "reminder_time": "9:05"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reminders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp api.ReminderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "a@example.com", resp.Email)
	assert.Equal(t, "09:05", resp.ReminderTime, "time is normalized to zero-padded form")
}

func TestSetReminderEndpointReplacesExisting(t *testing.T) {
	t.Parallel()

	reminders := newStubReminderStore()
	router := reminderRouter(t, reminders)

	for _, at := range []string{"08:00", "21:30"} {
		body := `{"email": "a@example.com", "reminder_time": "` + at + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/reminders", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	require.Len(t, reminders.reminders, 1)
	assert.Equal(t, "21:30", reminders.reminders["a@example.com"].ReminderTime)
}

func TestSetReminderEndpointValidation(t *testing.T) {
	t.Parallel()

	router := reminderRouter(t, newStubReminderStore())

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"reminder_time": "09:00"}`},
		{"bad email", `{"email": "nope", "reminder_time": "09:00"}`},
		{"bad time", `{"email": "a@example.com", "reminder_time": "25:61"}`},
		{"missing time", `{"email": "a@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/reminders", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetReminderEndpoint(t *testing.T) {
	t.Parallel()

	reminders := newStubReminderStore()
	router := reminderRouter(t, reminders)

	body := `{"email": "a@example.com", "reminder_time": "07:45"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reminders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/reminders?email=a@example.com", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.ReminderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "07:45", resp.ReminderTime)
}

func TestGetReminderEndpointErrors(t *testing.T) {
	t.Parallel()

	router := reminderRouter(t, newStubReminderStore())

	req := httptest.NewRequest(http.MethodGet, "/api/reminders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing email query parameter")

	req = httptest.NewRequest(http.MethodGet, "/api/reminders?email=missing@example.com", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
