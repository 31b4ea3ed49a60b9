package textanalysis

import (
	"sort"
	"strings"
)

const summarySentences = 15

// Summarize produces an extractive summary of at most maxWords
// whitespace-delimited words. Sentences are scored by the summed corpus
// frequency of their non-stopword tokens (a word occurring twice in a
// sentence contributes twice); the highest-scoring sentences are selected,
// ties resolved toward the earlier sentence, and the selection is emitted
// in original document order. A truncated summary ends with "...".
func Summarize(text string, maxWords int) string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	frequencies := newFreqTable()
	for _, sentence := range sentences {
		for _, word := range strings.Fields(sentence) {
			lower := strings.ToLower(word)
			if !IsStopword(lower) {
				frequencies.Add(lower)
			}
		}
	}

	scores := make([]int, len(sentences))
	for i, sentence := range sentences {
		for _, word := range strings.Fields(sentence) {
			scores[i] += frequencies.Count(strings.ToLower(word))
		}
	}

	indices := make([]int, len(sentences))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return scores[indices[i]] > scores[indices[j]]
	})
	if len(indices) > summarySentences {
		indices = indices[:summarySentences]
	}
	sort.Ints(indices)

	selected := make([]string, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, sentences[i])
	}
	summary := strings.Join(selected, " ")

	words := strings.Fields(summary)
	if maxWords > 0 && len(words) > maxWords {
		summary = strings.Join(words[:maxWords], " ") + "..."
	}
	return summary
}

// splitSentences breaks text into sentences on terminal punctuation
// followed by whitespace. Good enough for cleaned prose; abbreviations
// may over-split.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if isSentenceEnd(runes[i]) {
			// Consume trailing closing quotes/brackets attached to the terminator.
			for i+1 < len(runes) && isClosing(runes[i+1]) {
				i++
				current.WriteRune(runes[i])
			}
			if i+1 >= len(runes) || isWhitespace(runes[i+1]) {
				if sentence := strings.TrimSpace(current.String()); sentence != "" {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}
	if sentence := strings.TrimSpace(current.String()); sentence != "" {
		sentences = append(sentences, sentence)
	}
	return sentences
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isClosing(r rune) bool {
	return r == '"' || r == '\'' || r == ')' || r == ']' || r == '”'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
