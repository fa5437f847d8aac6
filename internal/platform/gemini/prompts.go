package gemini

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/speakcoach/speakcoach-api/internal/domain"
)

// feedbackTemplateText asks for coaching feedback and pins the two
// annotation lines the scoring engine extracts. The score and level
// formats must stay in sync with the extraction patterns in
// internal/scoring.
const feedbackTemplateText = `You are a supportive English speaking coach reviewing a learner's spoken practice transcript.
{{- if .HasProfile}}

About the learner:
{{- if .NativeLanguage}}
- Native language: {{.NativeLanguage}}{{end}}
{{- if .CurrentLevel}}
- Current level: {{.CurrentLevel}}{{end}}
{{- if .TargetLevel}}
- Target level: {{.TargetLevel}}{{end}}
{{- if .FocusAreas}}
- Wants to focus on: {{.FocusAreas}}{{end}}
{{- end}}

Transcript:
"{{.Transcript}}"

Give short, encouraging feedback on grammar, vocabulary and clarity, with concrete suggestions for improvement.

End your response with exactly these two lines:
Fluency Score: <score from 0 to 10>/10
CEFR Level: <one of A1, A2, B1, B2, C1, C2>`

// pronunciationTemplateText asks for pronunciation-focused feedback only.
const pronunciationTemplateText = `You are an English pronunciation coach. A learner spoke the following transcript aloud.

Transcript:
"{{.Transcript}}"

List the words or sounds in this transcript that learners most commonly mispronounce, explain the likely mistake for each, and give a simple tip to fix it. Keep the list short and practical.`

// speakingPromptText requests a single daily practice topic. No template
// variables; the same request is sent every day and the variety comes
// from the model.
const speakingPromptText = `Generate one short, friendly speaking practice topic for an English learner. It should be an open question about everyday life that someone can talk about for two minutes. Reply with the question only, no preamble.`

var (
	feedbackTemplate      = template.Must(template.New("feedback").Parse(feedbackTemplateText))
	pronunciationTemplate = template.Must(template.New("pronunciation").Parse(pronunciationTemplateText))
)

// promptData carries the values interpolated into the feedback templates.
type promptData struct {
	Transcript     string
	HasProfile     bool
	NativeLanguage string
	CurrentLevel   string
	TargetLevel    string
	FocusAreas     string
}

// buildFeedbackPrompt renders the coaching feedback prompt for the given
// transcript and optional learner profile.
func buildFeedbackPrompt(transcript string, profile domain.LearnerProfile) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", ErrEmptyTranscript
	}

	data := promptData{
		Transcript:     transcript,
		HasProfile:     !profile.IsZero(),
		NativeLanguage: profile.NativeLanguage,
		CurrentLevel:   profile.CurrentLevel,
		TargetLevel:    profile.TargetLevel,
		FocusAreas:     strings.Join(profile.FocusAreas, ", "),
	}

	var buf bytes.Buffer
	if err := feedbackTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute feedback template: %w", err)
	}
	return buf.String(), nil
}

// buildPronunciationPrompt renders the pronunciation-only prompt.
func buildPronunciationPrompt(transcript string) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", ErrEmptyTranscript
	}

	var buf bytes.Buffer
	if err := pronunciationTemplate.Execute(&buf, promptData{Transcript: transcript}); err != nil {
		return "", fmt.Errorf("failed to execute pronunciation template: %w", err)
	}
	return buf.String(), nil
}
