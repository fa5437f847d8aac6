package api_test

import (
	"bytes"
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

func sessionRouter(t *testing.T, sessions *stubSessionStore, gen *stubGenerator) *chi.Mux {
	t.Helper()
	handler := api.NewSessionHandler(newSessionService(t, sessions, gen))

	r := chi.NewRouter()
	r.Post("/api/sessions", handler.CreateSession)
	r.Get("/api/sessions", handler.ListSessions)
	r.Get("/api/sessions/{id}", handler.GetSession)
	r.Post("/api/feedback/pronunciation", handler.PronunciationFeedback)
	return r
}

func TestCreateSessionEndpoint(t *testing.T) {
	t.Parallel()

	sessions := &stubSessionStore{}
	gen := &stubGenerator{feedback: "Nice flow.\nFluency Score: 8/10\nCEFR Level: B2"}
	router := sessionRouter(t, sessions, gen)

	body := `{
		"transcript": "I visited my grandmother last weekend.",
		"prompt": "Talk about your weekend.",
		"duration_seconds": 30,
		"profile": {"native_language": "Polish"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp api.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "I visited my grandmother last weekend.", resp.Transcript)
	assert.Equal(t, 8.0, resp.Metrics.FluencyScore)
	assert.Equal(t, "B2", resp.Metrics.CEFRLevel)
	require.Len(t, sessions.sessions, 1)
}

func TestCreateSessionEndpointValidation(t *testing.T) {
	t.Parallel()

	router := sessionRouter(t, &stubSessionStore{}, &stubGenerator{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"transcript": `},
		{"missing transcript", `{"duration_seconds": 30}`},
		{"negative duration", `{"transcript": "hi there", "duration_seconds": -5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListSessionsEndpointEmpty(t *testing.T) {
	t.Parallel()

	router := sessionRouter(t, &stubSessionStore{}, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()),
		"empty history must serialize as an empty array")
}

func TestGetSessionEndpoint(t *testing.T) {
	t.Parallel()

	sessions := &stubSessionStore{}
	gen := &stubGenerator{feedback: "Fluency Score: 6/10\nCEFR Level: B1"}
	router := sessionRouter(t, sessions, gen)

	createBody := `{"transcript": "Testing retrieval.", "duration_seconds": 15}`
	createReq := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(createBody))
	createRec := httptest.NewRecorder()
	router.ServeHTTP(createRec, createReq)
	require.Equal(t, http.StatusCreated, createRec.Code)

	var created api.SessionResponse
	require.NoError(t, json.Unmarshal(createRec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+created.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got api.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
}

func TestGetSessionEndpointErrors(t *testing.T) {
	t.Parallel()

	router := sessionRouter(t, &stubSessionStore{}, &stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/sessions/6e4f1a40-9d85-4f4c-8a46-3f4f38f1f3b7", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPronunciationFeedbackEndpoint(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{pronunciation: "Mind the 'v' in 'visited'."}
	router := sessionRouter(t, &stubSessionStore{}, gen)

	body := `{"transcript": "I visited the museum."}`
	req := httptest.NewRequest(http.MethodPost, "/api/feedback/pronunciation", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.PronunciationFeedbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Mind the 'v' in 'visited'.", resp.Feedback)
}

func TestCreateSessionEndpointSavesOnGeneratorFailure(t *testing.T) {
	t.Parallel()

	sessions := &stubSessionStore{}
	gen := &stubGenerator{err: assert.AnError}
	router := sessionRouter(t, sessions, gen)

	body := `{"transcript": "Still counts.", "duration_seconds": 20}`
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Feedback)
	assert.Equal(t, "Unknown", resp.Metrics.CEFRLevel)
}
