package textanalysis

import (
	"strings"
	"testing"
)

func repeatWords(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestReadingTimeBoundaries(t *testing.T) {
	cases := []struct {
		words int
		want  string
	}{
		{0, "0 minutes"},
		{1, "1 minute"},
		{199, "1 minute"},
		{200, "1 minute"},
		{201, "2 minutes"},
		{400, "2 minutes"},
		{401, "3 minutes"},
	}
	for _, tc := range cases {
		if got := ReadingTime(repeatWords(tc.words)); got != tc.want {
			t.Fatalf("%d words: expected %q, got %q", tc.words, tc.want, got)
		}
	}
}

func TestReadingTimeMonotonic(t *testing.T) {
	prev := 0
	for _, n := range []int{0, 50, 199, 200, 201, 999, 1000, 5000} {
		text := repeatWords(n)
		wordCount := len(strings.Fields(text))
		minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
		if minutes < prev {
			t.Fatalf("reading time decreased at %d words", n)
		}
		prev = minutes
	}
}
