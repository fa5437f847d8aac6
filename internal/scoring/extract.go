package scoring

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/speakcoach/speakcoach-api/internal/domain"
)

// AnnotationExtractor pulls the structured score annotations out of
// free-form AI coaching feedback. The feedback is unstructured prose from
// an external generator and is not guaranteed to contain the expected
// markers, so implementations must fail soft: return the documented
// default instead of an error, and never block the surrounding session
// save.
type AnnotationExtractor interface {
	// FluencyScore returns the 0-10 fluency score annotated in the
	// feedback, or 0 when no annotation is present.
	FluencyScore(feedback string) float64

	// CEFRLevel returns the upper-cased CEFR level (A1-C2) annotated in
	// the feedback, or domain.CEFRUnknown when no annotation is present.
	CEFRLevel(feedback string) string
}

var (
	fluencyScorePattern = regexp.MustCompile(`(?i)Fluency Score:\s*(\d+(?:\.\d+)?)`)
	cefrLevelPattern    = regexp.MustCompile(`(?i)CEFR Level:\s*([ABC][12])`)
)

// RegexExtractor is the default AnnotationExtractor. It looks for the
// literal labels the coaching prompt asks the generator to emit
// ("Fluency Score: 7.5", "CEFR Level: B2") anywhere in the text, so it
// tolerates reordering, extra prose, and markdown decoration around the
// labels.
type RegexExtractor struct{}

var _ AnnotationExtractor = RegexExtractor{}

// FluencyScore implements AnnotationExtractor.
func (RegexExtractor) FluencyScore(feedback string) float64 {
	match := fluencyScorePattern.FindStringSubmatch(feedback)
	if match == nil {
		return 0
	}

	score, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return score
}

// CEFRLevel implements AnnotationExtractor.
func (RegexExtractor) CEFRLevel(feedback string) string {
	match := cefrLevelPattern.FindStringSubmatch(feedback)
	if match == nil {
		return domain.CEFRUnknown
	}
	return strings.ToUpper(match[1])
}

// UnwrapFeedback tolerates feedback that arrives JSON-encoded with the
// prose under a "feedback" field, and returns the inner text in that
// case. Anything that is not such an envelope is returned unchanged.
func UnwrapFeedback(feedback string) string {
	trimmed := strings.TrimSpace(feedback)
	if !strings.HasPrefix(trimmed, "{") {
		return feedback
	}

	var envelope struct {
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil || envelope.Feedback == "" {
		return feedback
	}
	return envelope.Feedback
}
