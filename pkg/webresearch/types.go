package webresearch

import "encoding/json"

// SearchResult is one organic result returned by the search provider.
// A failed search call is represented as a single-element slice whose only
// entry carries Err; callers must treat that as zero usable results.
type SearchResult struct {
	URL     string `json:"url,omitempty"`
	Snippet string `json:"snippet,omitempty"`
	Date    string `json:"date,omitempty"`
	Err     string `json:"error,omitempty"`
}

// PageAnalysis is the per-candidate analysis record. Exactly one is
// produced for every SearchResult fed to the analyzer, in input order,
// with URL always equal to the source result's URL. A record is either a
// success (all analysis fields populated) or a failure (Err set, no
// analysis fields); there is no partial state in between.
type PageAnalysis struct {
	URL              string
	Title            string
	SearchSnippet    string
	Summary          string
	Keywords         []string
	ReadingTime      string
	CredibilityScore float64
	SiteName         string
	ScrapedDate      string
	SearchDate       string
	Err              string
}

// Failed reports whether this record is the failure variant.
func (a PageAnalysis) Failed() bool {
	return a.Err != ""
}

type pageAnalysisSuccess struct {
	URL              string   `json:"url"`
	Title            string   `json:"title"`
	SearchSnippet    string   `json:"search_snippet"`
	Summary          string   `json:"summary"`
	Keywords         []string `json:"keywords"`
	ReadingTime      string   `json:"reading_time"`
	CredibilityScore float64  `json:"credibility_score"`
	SiteName         string   `json:"site_name,omitempty"`
	ScrapedDate      string   `json:"scraped_date"`
	SearchDate       string   `json:"search_date,omitempty"`
}

type pageAnalysisFailure struct {
	URL           string `json:"url"`
	Error         string `json:"error"`
	SearchSnippet string `json:"search_snippet"`
	ScrapedDate   string `json:"scraped_date"`
	SearchDate    string `json:"search_date,omitempty"`
}

// MarshalJSON emits the success or failure wire shape depending on Err.
func (a PageAnalysis) MarshalJSON() ([]byte, error) {
	if a.Failed() {
		return json.Marshal(pageAnalysisFailure{
			URL:           a.URL,
			Error:         a.Err,
			SearchSnippet: a.SearchSnippet,
			ScrapedDate:   a.ScrapedDate,
			SearchDate:    a.SearchDate,
		})
	}
	keywords := a.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return json.Marshal(pageAnalysisSuccess{
		URL:              a.URL,
		Title:            a.Title,
		SearchSnippet:    a.SearchSnippet,
		Summary:          a.Summary,
		Keywords:         keywords,
		ReadingTime:      a.ReadingTime,
		CredibilityScore: a.CredibilityScore,
		SiteName:         a.SiteName,
		ScrapedDate:      a.ScrapedDate,
		SearchDate:       a.SearchDate,
	})
}

// UnmarshalJSON accepts either wire shape.
func (a *PageAnalysis) UnmarshalJSON(data []byte) error {
	var wire struct {
		pageAnalysisSuccess
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*a = PageAnalysis{
		URL:              wire.URL,
		Title:            wire.Title,
		SearchSnippet:    wire.SearchSnippet,
		Summary:          wire.Summary,
		Keywords:         wire.Keywords,
		ReadingTime:      wire.ReadingTime,
		CredibilityScore: wire.CredibilityScore,
		SiteName:         wire.SiteName,
		ScrapedDate:      wire.ScrapedDate,
		SearchDate:       wire.SearchDate,
		Err:              wire.Error,
	}
	return nil
}
