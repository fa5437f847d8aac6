package scoring

import (
	"math"
	"regexp"
	"strings"
)

// sentenceSplitPattern breaks a transcript on runs of sentence
// terminators. Chunks that contain no non-whitespace characters are not
// counted as sentences.
var sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

// Readability computes the Flesch-Kincaid grade level of the transcript:
//
//	0.39*(words/sentences) + 11.8*(syllables/words) - 15.59
//
// rounded to two decimal places. Word and sentence counts are floored at
// one so the formula is total; the result is not clamped and may be
// negative for very short or simple input.
func Readability(transcript string) float64 {
	words := wordCount(transcript)
	sentences := sentenceCount(transcript)
	syllables := CountSyllables(transcript)

	score := 0.39*(float64(words)/float64(sentences)) +
		11.8*(float64(syllables)/float64(words)) - 15.59

	return math.Round(score*100) / 100
}

// WordsPerMinute computes the speaking rate for a transcript spoken over
// the given duration. A missing or non-positive duration falls back to a
// documented one-minute floor, so the result then equals the word count;
// callers displaying WPM should suppress it when the duration is absent
// or implausibly short.
func WordsPerMinute(transcript string, durationSeconds float64) float64 {
	minutes := durationSeconds / 60
	if minutes <= 0 {
		minutes = 1
	}
	return float64(wordCount(transcript)) / minutes
}

func wordCount(transcript string) int {
	n := len(strings.Fields(transcript))
	if n == 0 {
		return 1
	}
	return n
}

func sentenceCount(transcript string) int {
	n := 0
	for _, chunk := range sentenceSplitPattern.Split(transcript, -1) {
		if strings.TrimSpace(chunk) != "" {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}
