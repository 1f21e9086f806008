package news

import "time"

// Article is a single news result as supplied by the backend. Every
// field may be empty; the backend passes provider data through as-is.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Author      string `json:"author,omitempty"`
	PublishedAt string `json:"publishedAt"`
}

// ID derives a stable identifier for session-level bookkeeping:
// the URL when present, otherwise the title.
func (a Article) ID() string {
	if a.URL != "" {
		return a.URL
	}
	return a.Title
}

// Normalized returns a copy with the defaults the add-to-workspace
// endpoint expects: "Unknown" source and a current RFC3339 publish
// date when the provider supplied none.
func (a Article) Normalized() Article {
	if a.Source == "" {
		a.Source = "Unknown"
	}
	if a.PublishedAt == "" {
		a.PublishedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return a
}

// SearchQuery carries one search submission. Text must be non-empty
// after trimming; the caller validates before building a query.
type SearchQuery struct {
	Text     string
	Category string
	Language string
	PageSize int
}
