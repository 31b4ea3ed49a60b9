package webresearch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/blogforge/blogforge/pkg/shared/httputil"
)

type serperResponse struct {
	Organic []struct {
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
		Date    string `json:"date"`
	} `json:"organic"`
}

// Search runs one query against the serper.dev API and returns at most
// MaxSearchResults organic results. It never returns an error: transport
// or HTTP failures yield a single marker entry with Err set, which the
// analyzer turns into a failure record.
func (t *Tool) Search(ctx context.Context, query string) []SearchResult {
	payload := map[string]string{"q": query}
	headers := map[string]string{"X-API-KEY": t.cfg.Serper.APIKey}
	data, _, err := httputil.PostJSON(ctx, t.cfg.Serper.BaseURL, headers, payload, t.cfg.Serper.TimeoutSecs)
	if err != nil {
		return []SearchResult{{Err: fmt.Sprintf("an error occurred while searching: %v", err)}}
	}

	var resp serperResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return []SearchResult{{Err: fmt.Sprintf("an error occurred while searching: %v", err)}}
	}

	organic := resp.Organic
	if len(organic) > t.cfg.Serper.MaxResults {
		organic = organic[:t.cfg.Serper.MaxResults]
	}
	results := make([]SearchResult, 0, len(organic))
	for _, entry := range organic {
		results = append(results, SearchResult{
			URL:     entry.Link,
			Snippet: entry.Snippet,
			Date:    entry.Date,
		})
	}
	return results
}
