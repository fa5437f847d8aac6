package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speakcoach/speakcoach-api/internal/domain"
)

func TestBuildFeedbackPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := buildFeedbackPrompt("I goed to the store yesterday.", domain.LearnerProfile{})
	require.NoError(t, err)

	assert.Contains(t, prompt, "I goed to the store yesterday.")
	assert.Contains(t, prompt, "Fluency Score:", "prompt must request the score annotation")
	assert.Contains(t, prompt, "CEFR Level:", "prompt must request the level annotation")
	assert.NotContains(t, prompt, "About the learner",
		"empty profile should add no learner section")
}

func TestBuildFeedbackPromptWithProfile(t *testing.T) {
	t.Parallel()

	profile := domain.LearnerProfile{
		NativeLanguage: "Spanish",
		CurrentLevel:   "B1",
		TargetLevel:    "C1",
		FocusAreas:     []string{"phrasal verbs", "past tenses"},
	}

	prompt, err := buildFeedbackPrompt("Yesterday I have seen a film.", profile)
	require.NoError(t, err)

	assert.Contains(t, prompt, "About the learner")
	assert.Contains(t, prompt, "Native language: Spanish")
	assert.Contains(t, prompt, "Current level: B1")
	assert.Contains(t, prompt, "Target level: C1")
	assert.Contains(t, prompt, "phrasal verbs, past tenses")
}

func TestBuildFeedbackPromptEmptyTranscript(t *testing.T) {
	t.Parallel()

	for _, transcript := range []string{"", "   ", "\n\t"} {
		_, err := buildFeedbackPrompt(transcript, domain.LearnerProfile{})
		assert.ErrorIs(t, err, ErrEmptyTranscript)
	}
}

func TestBuildPronunciationPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := buildPronunciationPrompt("The sixth sheik's sixth sheep is sick.")
	require.NoError(t, err)

	assert.Contains(t, prompt, "The sixth sheik's sixth sheep is sick.")
	assert.Contains(t, prompt, "pronunciation")
	assert.NotContains(t, prompt, "CEFR Level:",
		"pronunciation feedback carries no level annotation")

	_, err = buildPronunciationPrompt("  ")
	assert.ErrorIs(t, err, ErrEmptyTranscript)
}
