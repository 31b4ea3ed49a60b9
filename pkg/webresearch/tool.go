package webresearch

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// Tool searches the web for a topic, scrapes the resulting pages, and
// analyzes each one into a structured record: summary, keywords, reading
// time, and a credibility score.
type Tool struct {
	cfg Config
}

// NewTool validates the config and returns a ready tool. A missing Serper
// API key is a construction-time error so the surrounding service can
// refuse to start instead of failing on every request.
func NewTool(cfg Config) (*Tool, error) {
	cfg = *cfg.WithDefaults()
	if strings.TrimSpace(cfg.Serper.APIKey) == "" {
		return nil, errors.New("serper api key is not set")
	}
	return &Tool{cfg: cfg}, nil
}

// AnalyzeTopic is the pipeline entry point: one search, then per-candidate
// analysis. The returned slice always has one record per search result.
func (t *Tool) AnalyzeTopic(ctx context.Context, query string) []PageAnalysis {
	return t.Analyze(ctx, t.Search(ctx, query))
}

// AnalyzeTopicJSON runs AnalyzeTopic and renders the records as an
// indented JSON array, the form consumed by the research agent prompt.
func (t *Tool) AnalyzeTopicJSON(ctx context.Context, query string) (string, error) {
	data, err := json.MarshalIndent(t.AnalyzeTopic(ctx, query), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
