package textanalysis

import "sort"

// freqTable counts word occurrences while remembering the order in which
// words were first seen, so top-N selection has a fixed tie-break.
type freqTable struct {
	counts map[string]int
	order  []string
}

func newFreqTable() *freqTable {
	return &freqTable{counts: make(map[string]int)}
}

func (f *freqTable) Add(word string) {
	if _, seen := f.counts[word]; !seen {
		f.order = append(f.order, word)
	}
	f.counts[word]++
}

func (f *freqTable) Count(word string) int {
	return f.counts[word]
}

// MostCommon returns up to n words ordered by count descending; words with
// equal counts keep first-occurrence order.
func (f *freqTable) MostCommon(n int) []string {
	words := make([]string, len(f.order))
	copy(words, f.order)
	sort.SliceStable(words, func(i, j int) bool {
		return f.counts[words[i]] > f.counts[words[j]]
	})
	if n >= 0 && len(words) > n {
		words = words[:n]
	}
	return words
}
