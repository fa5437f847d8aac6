package scoring

import (
	"regexp"
	"strings"
)

var (
	// silentSuffixPattern strips a trailing silent-e family suffix before
	// vowel runs are counted: "es" or "e" preceded by a consonant other
	// than 'l' (the consonant is removed with the suffix), or a bare "ed".
	silentSuffixPattern = regexp.MustCompile(`([^laeiouy]es|ed|[^laeiouy]e)$`)

	// vowelRunPattern matches runs of one or two consecutive vowel-class
	// characters; each match counts as one syllable, so a longer run of
	// length L contributes ceil(L/2).
	vowelRunPattern = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// CountSyllables estimates the total syllable count of the given text.
//
// Each whitespace-delimited token is lower-cased, has its silent suffix
// and any leading 'y' stripped, and then contributes one syllable per
// remaining vowel run. A token with no vowel run at all still counts as
// one syllable. Empty text yields zero.
func CountSyllables(text string) int {
	total := 0
	for _, token := range strings.Fields(strings.ToLower(text)) {
		total += countWordSyllables(token)
	}
	return total
}

func countWordSyllables(word string) int {
	word = silentSuffixPattern.ReplaceAllString(word, "")
	word = strings.TrimPrefix(word, "y")

	runs := len(vowelRunPattern.FindAllString(word, -1))
	if runs == 0 {
		return 1
	}
	return runs
}
