package scoring

import (
	"github.com/speakcoach/speakcoach-api/internal/domain"
)

// Engine combines the readability, speaking-rate, and annotation
// extraction calculations into a single SessionMetrics result. It holds
// no mutable state and is safe for concurrent use.
type Engine struct {
	extractor AnnotationExtractor
}

// NewEngine creates a scoring Engine using the given annotation
// extractor. A nil extractor selects the default RegexExtractor.
func NewEngine(extractor AnnotationExtractor) *Engine {
	if extractor == nil {
		extractor = RegexExtractor{}
	}
	return &Engine{extractor: extractor}
}

// ComputeMetrics scores a practice session.
//
// The readability score depends only on the transcript and is always
// computed. The fluency score and CEFR level are extracted from the AI
// feedback text when present; an empty or marker-free feedback yields the
// documented defaults (0 and "Unknown") rather than an error. The
// feedback may be a JSON envelope wrapping the prose under a "feedback"
// field; it is unwrapped before extraction.
//
// A non-positive durationSeconds falls back to a one-minute floor for the
// words-per-minute calculation.
func (e *Engine) ComputeMetrics(transcript, feedback string, durationSeconds float64) domain.SessionMetrics {
	prose := UnwrapFeedback(feedback)

	return domain.SessionMetrics{
		ReadabilityScore: Readability(transcript),
		FluencyScore:     clampFluency(e.extractor.FluencyScore(prose)),
		CEFRLevel:        e.extractor.CEFRLevel(prose),
		WordsPerMinute:   WordsPerMinute(transcript, durationSeconds),
	}
}

// clampFluency keeps an extracted score inside the 0-10 range the domain
// accepts, so a malformed annotation can never block a session save.
func clampFluency(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 10:
		return 10
	default:
		return score
	}
}
