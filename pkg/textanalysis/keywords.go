package textanalysis

import (
	"strings"
	"unicode"
)

// Keywords returns up to limit keywords from text, most frequent first.
// Tokens are case-folded runs of letters and digits; stopwords are
// excluded. Equal counts keep first-occurrence order.
func Keywords(text string, limit int) []string {
	frequencies := newFreqTable()
	for _, word := range tokenize(strings.ToLower(text)) {
		if !IsStopword(word) {
			frequencies.Add(word)
		}
	}
	return frequencies.MostCommon(limit)
}

// tokenize splits text into maximal alphanumeric runs.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
