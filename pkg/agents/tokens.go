package agents

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tokenizerCache   = make(map[string]*tiktoken.Tiktoken)
	tokenizerCacheMu sync.RWMutex
)

func getTokenizer(model string) (*tiktoken.Tiktoken, error) {
	tokenizerCacheMu.RLock()
	if tkm, ok := tokenizerCache[model]; ok {
		tokenizerCacheMu.RUnlock()
		return tkm, nil
	}
	tokenizerCacheMu.RUnlock()

	tokenizerCacheMu.Lock()
	defer tokenizerCacheMu.Unlock()
	if tkm, ok := tokenizerCache[model]; ok {
		return tkm, nil
	}

	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		// Unknown models fall back to the GPT-4 family encoding.
		tkm, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, err
		}
	}
	tokenizerCache[model] = tkm
	return tkm, nil
}

// truncateToTokens trims text to at most maxTokens tokens for the given
// model. Text that cannot exceed the budget is returned untouched without
// loading a tokenizer; if no tokenizer is available the trim degrades to a
// whitespace-word approximation.
func truncateToTokens(text, model string, maxTokens int) string {
	if maxTokens <= 0 {
		return text
	}
	if fitsTokenBudget(text, maxTokens) {
		return text
	}
	tkm, err := getTokenizer(model)
	if err != nil {
		words := strings.Fields(text)
		if len(words) <= maxTokens {
			return text
		}
		return strings.Join(words[:maxTokens], " ")
	}
	tokens := tkm.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}
	return tkm.Decode(tokens[:maxTokens])
}

// fitsTokenBudget reports whether text provably fits in maxTokens without
// tokenizing. Every BPE token covers at least one byte, so the byte length
// bounds the token count from above. Rune count is NOT a valid bound: a
// single multibyte rune can encode to several tokens.
func fitsTokenBudget(text string, maxTokens int) bool {
	return len(text) <= maxTokens
}
