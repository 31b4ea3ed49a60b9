package textanalysis

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// boilerplatePhrases are navigation/consent fragments stripped during
// cleaning and used to reject whole paragraphs. Matching is literal
// substring matching, not word-boundary aware: "cookie policy" survives
// phrase removal as " policy" because only "cookie" is on the list. This
// mirrors the upstream scraper's observable behavior and is kept as-is.
var boilerplatePhrases = []string{
	"sign in", "sign up", "join us", "get started", "subscribe", "cookie",
	"privacy policy", "terms of service", "all rights reserved",
}

const minParagraphLength = 50

// CleanText lowercases the input, deletes every boilerplate phrase
// wherever it appears as a substring, collapses whitespace runs to single
// spaces, trims, and upcases the first rune. Idempotent for input that is
// already clean.
func CleanText(text string) string {
	cleaned := strings.ToLower(text)
	for _, phrase := range boilerplatePhrases {
		cleaned = strings.ReplaceAll(cleaned, phrase, "")
	}
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return capitalize(cleaned)
}

// RelevantParagraph reports whether a raw paragraph is worth keeping:
// at least minParagraphLength characters and free of boilerplate phrases
// (case-insensitive). Length is counted in characters, not bytes, so
// multibyte text is held to the same bar as ASCII.
func RelevantParagraph(text string) bool {
	if utf8.RuneCountInString(text) < minParagraphLength {
		return false
	}
	lower := strings.ToLower(text)
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	return true
}

func capitalize(text string) string {
	if text == "" {
		return text
	}
	first, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(first)) + text[size:]
}
