package textanalysis

import (
	"fmt"
	"strings"
)

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

// ReadingTime estimates how long text takes to read, formatted as
// "1 minute" or "N minutes". Empty text reads in "0 minutes".
func ReadingTime(text string) string {
	wordCount := len(strings.Fields(text))
	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}
