package webresearch

import (
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var trustedDomainMarkers = []string{".edu", ".gov", ".org"}

// credibilityScore is a heuristic additive score in [0, 1] built from five
// independent signals: trusted domain, content length, author markup,
// citation markup, and https.
func credibilityScore(rawURL string, doc *goquery.Document) float64 {
	score := 0.0

	var parsed *url.URL
	if p, err := url.Parse(rawURL); err == nil {
		parsed = p
	}

	if parsed != nil {
		host := parsed.Host
		for _, marker := range trustedDomainMarkers {
			if strings.Contains(host, marker) {
				score += 0.3
				break
			}
		}
	}

	if utf8.RuneCountInString(doc.Text()) > 2000 {
		score += 0.2
	}
	if doc.Find("author, .author").Length() > 0 {
		score += 0.2
	}
	if doc.Find("cite, .reference").Length() > 0 {
		score += 0.2
	}
	if parsed != nil && parsed.Scheme == "https" {
		score += 0.1
	}

	return math.Round(score*100) / 100
}
