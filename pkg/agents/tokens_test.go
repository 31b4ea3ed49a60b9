package agents

import (
	"strings"
	"testing"
)

func TestTruncateToTokensShortTextUntouched(t *testing.T) {
	text := "short research payload"
	if got := truncateToTokens(text, DefaultModel, 1000); got != text {
		t.Fatalf("short text must pass through unchanged, got %q", got)
	}
}

func TestTruncateToTokensZeroBudgetDisablesTrim(t *testing.T) {
	text := strings.Repeat("word ", 500)
	if got := truncateToTokens(text, DefaultModel, 0); got != text {
		t.Fatalf("non-positive budget must disable trimming")
	}
}

func TestFitsTokenBudgetCountsBytesNotRunes(t *testing.T) {
	// 100 emoji are 100 runes but 400 bytes, and each one encodes to
	// multiple tokens; only the byte length is a safe upper bound.
	emoji := strings.Repeat("\U0001F916", 100)
	if fitsTokenBudget(emoji, 150) {
		t.Fatalf("byte-heavy text must not be assumed inside the budget")
	}
	if !fitsTokenBudget(emoji, 400) {
		t.Fatalf("text within the byte bound always fits")
	}
}

func TestTruncateToTokensMultibyteWithinByteBound(t *testing.T) {
	emoji := strings.Repeat("\U0001F916", 50)
	if got := truncateToTokens(emoji, DefaultModel, 200); got != emoji {
		t.Fatalf("text within the byte bound must pass through unchanged, got %q", got)
	}
}
