package webresearch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"

	"github.com/blogforge/blogforge/pkg/textanalysis"
)

const (
	summaryMaxWords = 500
	maxKeywords     = 10
	noTitleFallback = "No title found"
)

// Analyze produces one PageAnalysis per input result, in input order.
// Candidates are processed sequentially and independently; a failure on
// one page never aborts the rest, and no error escapes this method.
func (t *Tool) Analyze(ctx context.Context, results []SearchResult) []PageAnalysis {
	analyses := make([]PageAnalysis, 0, len(results))
	for _, result := range results {
		analyses = append(analyses, t.analyzePage(ctx, result))
	}
	return analyses
}

func (t *Tool) analyzePage(ctx context.Context, result SearchResult) PageAnalysis {
	snippet := result.Snippet
	if snippet == "" {
		snippet = "No snippet available"
	}
	analysis := PageAnalysis{
		URL:           result.URL,
		SearchSnippet: textanalysis.CleanText(snippet),
		ScrapedDate:   time.Now().UTC().Format(time.RFC3339),
		SearchDate:    result.Date,
	}

	if result.Err != "" {
		analysis.Err = result.Err
		return analysis
	}

	body, err := t.fetchPage(ctx, result.URL)
	if err != nil {
		analysis.Err = fmt.Sprintf("failed to scrape or analyze: %v", err)
		return analysis
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		analysis.Err = fmt.Sprintf("failed to scrape or analyze: %v", err)
		return analysis
	}

	title := noTitleFallback
	if node := doc.Find("title").First(); node.Length() > 0 {
		if cleaned := textanalysis.CleanText(node.Text()); cleaned != "" {
			title = cleaned
		}
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, node *goquery.Selection) {
		raw := node.Text()
		if textanalysis.RelevantParagraph(raw) {
			paragraphs = append(paragraphs, textanalysis.CleanText(raw))
		}
	})
	fullText := joinParagraphs(paragraphs)

	analysis.Title = title
	analysis.Summary = textanalysis.Summarize(fullText, summaryMaxWords)
	analysis.Keywords = textanalysis.Keywords(fullText, maxKeywords)
	analysis.ReadingTime = textanalysis.ReadingTime(fullText)
	analysis.CredibilityScore = credibilityScore(result.URL, doc)
	analysis.SiteName = resolveSiteName(result.URL, body)
	return analysis
}

func (t *Tool) fetchPage(ctx context.Context, rawURL string) ([]byte, error) {
	client := &http.Client{Timeout: time.Duration(t.cfg.Fetch.TimeoutSecs) * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, t.cfg.Fetch.MaxBodyBytes))
}

func joinParagraphs(paragraphs []string) string {
	var b bytes.Buffer
	for i, paragraph := range paragraphs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(paragraph)
	}
	return b.String()
}

// resolveSiteName prefers the page's og:site_name, falling back to the
// URL host.
func resolveSiteName(rawURL string, body []byte) string {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(bytes.NewReader(body)); err == nil && og.SiteName != "" {
		return og.SiteName
	}
	if parsed, err := url.Parse(rawURL); err == nil {
		return parsed.Hostname()
	}
	return ""
}
