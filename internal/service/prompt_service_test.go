package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speakcoach/speakcoach-api/internal/service"
)

func newPromptService(t *testing.T, prompts *fakePromptStore, generator *fakePromptGenerator) *service.PromptService {
	t.Helper()
	svc, err := service.NewPromptService(prompts, generator, testLogger())
	require.NoError(t, err)
	return svc
}

func TestGetDailyPromptGeneratesOncePerDay(t *testing.T) {
	t.Parallel()

	prompts := newFakePromptStore()
	generator := &fakePromptGenerator{prompt: "What did you eat for breakfast today?"}
	svc := newPromptService(t, prompts, generator)

	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	first, err := svc.GetDailyPrompt(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, "What did you eat for breakfast today?", first.Prompt)
	assert.Equal(t, 1, generator.calls)

	second, err := svc.GetDailyPrompt(context.Background(), now.Add(6*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same calendar day serves the stored prompt")
	assert.Equal(t, 1, generator.calls, "no second generation on the same day")
}

func TestGetDailyPromptFallsBackWhenGeneratorFails(t *testing.T) {
	t.Parallel()

	prompts := newFakePromptStore()
	generator := &fakePromptGenerator{err: errors.New("quota exceeded")}
	svc := newPromptService(t, prompts, generator)

	prompt, err := svc.GetDailyPrompt(context.Background(), time.Now())
	require.NoError(t, err, "a generator outage must not take the endpoint down")
	assert.Equal(t, service.FallbackPrompt, prompt.Prompt)
}

func TestGetDailyPromptServesUnsavedOnStoreCreateFailure(t *testing.T) {
	t.Parallel()

	prompts := newFakePromptStore()
	prompts.createErr = errors.New("read-only replica")
	generator := &fakePromptGenerator{prompt: "Talk about a book you enjoyed."}
	svc := newPromptService(t, prompts, generator)

	prompt, err := svc.GetDailyPrompt(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Talk about a book you enjoyed.", prompt.Prompt)
}

func TestGetDailyPromptStoreReadFailure(t *testing.T) {
	t.Parallel()

	prompts := newFakePromptStore()
	prompts.getErr = errors.New("connection refused")
	svc := newPromptService(t, prompts, &fakePromptGenerator{prompt: "x"})

	_, err := svc.GetDailyPrompt(context.Background(), time.Now())
	assert.Error(t, err, "an unreadable store is not a missing prompt")
}
