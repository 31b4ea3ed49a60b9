package webresearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewToolRequiresAPIKey(t *testing.T) {
	if _, err := NewTool(Config{}); err == nil {
		t.Fatalf("expected configuration error for missing api key")
	}
	if _, err := NewTool(Config{Serper: SerperConfig{APIKey: "  "}}); err == nil {
		t.Fatalf("blank api key must be rejected")
	}
	if _, err := NewTool(Config{Serper: SerperConfig{APIKey: "k"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyzeTopicEndToEnd(t *testing.T) {
	page := servePage(t, `<html><head><title>Fusion Energy</title></head><body>`+
		paragraph("fusion energy progress update", 20)+`</body></html>`)

	serper := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"organic":[{"link":"` + page.URL + `","snippet":"fusion news","date":"today"}]}`))
	}))
	defer serper.Close()

	tool := newTestTool(t, serper.URL)
	analyses := tool.AnalyzeTopic(context.Background(), "fusion energy")
	if len(analyses) != 1 {
		t.Fatalf("expected 1 record, got %d", len(analyses))
	}
	if analyses[0].Failed() {
		t.Fatalf("unexpected failure: %q", analyses[0].Err)
	}
	if analyses[0].URL != page.URL || analyses[0].Title != "Fusion energy" {
		t.Fatalf("unexpected record: %#v", analyses[0])
	}
}

func TestAnalyzeTopicSearchFailure(t *testing.T) {
	serper := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serper.Close()

	tool := newTestTool(t, serper.URL)
	analyses := tool.AnalyzeTopic(context.Background(), "anything")
	if len(analyses) != 1 || !analyses[0].Failed() {
		t.Fatalf("search failure must surface as one failure record, got %#v", analyses)
	}
}

func TestPageAnalysisJSONShapes(t *testing.T) {
	success := PageAnalysis{
		URL:           "https://example.org/a",
		Title:         "T",
		SearchSnippet: "S",
		Summary:       "Sum",
		Keywords:      []string{"k"},
		ReadingTime:   "1 minute",
		ScrapedDate:   "2026-01-02T03:04:05Z",
	}
	failure := PageAnalysis{
		URL:           "https://example.org/b",
		SearchSnippet: "S",
		ScrapedDate:   "2026-01-02T03:04:05Z",
		Err:           "failed to scrape or analyze: http 404",
	}

	data, err := json.Marshal([]PageAnalysis{success, failure})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(decoded))
	}

	if _, ok := decoded[0]["error"]; ok {
		t.Fatalf("success record must not carry error: %v", decoded[0])
	}
	// credibility_score must survive even at 0.0
	if _, ok := decoded[0]["credibility_score"]; !ok {
		t.Fatalf("success record must carry credibility_score: %v", decoded[0])
	}
	if _, ok := decoded[0]["keywords"]; !ok {
		t.Fatalf("success record must carry keywords: %v", decoded[0])
	}

	for _, field := range []string{"summary", "keywords", "reading_time", "credibility_score", "title"} {
		if _, ok := decoded[1][field]; ok {
			t.Fatalf("failure record must omit %s: %v", field, decoded[1])
		}
	}
	if decoded[1]["error"] == "" {
		t.Fatalf("failure record must carry error: %v", decoded[1])
	}

	// Consumers can decode either shape back into PageAnalysis.
	var roundTrip []PageAnalysis
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if roundTrip[0].Failed() || !roundTrip[1].Failed() {
		t.Fatalf("round trip lost the variant tags: %#v", roundTrip)
	}
}

func TestAnalyzeTopicJSON(t *testing.T) {
	serper := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"organic":[]}`))
	}))
	defer serper.Close()

	tool := newTestTool(t, serper.URL)
	out, err := tool.AnalyzeTopicJSON(context.Background(), "quiet topic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected empty JSON array, got %q", out)
	}
}
