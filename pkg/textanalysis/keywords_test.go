package textanalysis

import (
	"strings"
	"testing"
	"unicode"
)

func TestKeywordsOrderedByFrequency(t *testing.T) {
	text := "neutron neutron neutron proton proton electron"
	got := Keywords(text, 10)
	want := []string{"neutron", "proton", "electron"}
	if len(got) != len(want) {
		t.Fatalf("expected %d keywords, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keyword %d: expected %q, got %v", i, want[i], got)
		}
	}
}

func TestKeywordsExcludeStopwordsAndPunctuation(t *testing.T) {
	text := "The the THE reactor, reactor! and or but reactor?"
	got := Keywords(text, 10)
	if len(got) == 0 {
		t.Fatalf("expected at least one keyword")
	}
	for _, word := range got {
		if IsStopword(word) {
			t.Fatalf("stopword leaked into keywords: %q", word)
		}
		for _, r := range word {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				t.Fatalf("non-alphanumeric keyword: %q", word)
			}
		}
	}
	if got[0] != "reactor" {
		t.Fatalf("expected reactor first, got %v", got)
	}
}

func TestKeywordsLimit(t *testing.T) {
	words := []string{
		"alpha", "beta", "gamma", "delta", "epsilon", "zeta",
		"eta", "theta", "iota", "kappa", "lambda", "mu",
	}
	text := strings.Join(words, " ")
	got := Keywords(text, 10)
	if len(got) != 10 {
		t.Fatalf("expected 10 keywords, got %d", len(got))
	}
}

func TestKeywordsTieBreakFirstOccurrence(t *testing.T) {
	got := Keywords("zebra yak zebra yak xenon", 3)
	want := []string{"zebra", "yak", "xenon"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestKeywordsCaseFolded(t *testing.T) {
	got := Keywords("Plasma plasma PLASMA", 10)
	if len(got) != 1 || got[0] != "plasma" {
		t.Fatalf("expected single folded keyword, got %v", got)
	}
}
