package news

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestArticleID(t *testing.T) {
	tests := []struct {
		article Article
		want    string
	}{
		{Article{URL: "https://a", Title: "T"}, "https://a"},
		{Article{Title: "T"}, "T"},
		{Article{}, ""},
	}
	for _, tt := range tests {
		if got := tt.article.ID(); got != tt.want {
			t.Errorf("ID() = %q, want %q", got, tt.want)
		}
	}
}

func TestNormalizedDefaults(t *testing.T) {
	a := Article{Title: "T"}.Normalized()
	if a.Source != "Unknown" {
		t.Errorf("expected Unknown source, got %q", a.Source)
	}
	if a.PublishedAt == "" {
		t.Error("expected publishedAt to be defaulted")
	}
	if _, err := time.Parse(time.RFC3339, a.PublishedAt); err != nil {
		t.Errorf("defaulted publishedAt not RFC3339: %v", err)
	}
}

func TestNormalizedKeepsProvidedFields(t *testing.T) {
	a := Article{Source: "BBC News", PublishedAt: "2026-01-02T03:04:05Z"}.Normalized()
	if a.Source != "BBC News" {
		t.Errorf("source overwritten: %q", a.Source)
	}
	if a.PublishedAt != "2026-01-02T03:04:05Z" {
		t.Errorf("publishedAt overwritten: %q", a.PublishedAt)
	}
}

func TestSearchArticles(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/news/search" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"articles": []Article{
				{Title: "First", URL: "https://a", Source: "AP"},
				{Title: "Second", URL: "https://b", Source: "Reuters"},
			},
			"count": 2,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	articles, err := c.SearchArticles(context.Background(), SearchQuery{
		Text:     "climate",
		Language: "en",
		PageSize: 20,
	})
	if err != nil {
		t.Fatalf("SearchArticles: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	// Order must match the backend's
	if articles[0].Title != "First" || articles[1].Title != "Second" {
		t.Errorf("unexpected order: %q, %q", articles[0].Title, articles[1].Title)
	}
	if gotBody["query"] != "climate" {
		t.Errorf("expected query=climate, got %v", gotBody["query"])
	}
	if gotBody["page_size"] != float64(20) {
		t.Errorf("expected page_size=20, got %v", gotBody["page_size"])
	}
	if gotBody["language"] != "en" {
		t.Errorf("expected language=en, got %v", gotBody["language"])
	}
}

func TestSearchArticlesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"status":     "error",
			"message":    "Invalid category. Must be one of: business, technology",
			"error_type": "validation_error",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.SearchArticles(context.Background(), SearchQuery{Text: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "Invalid category. Must be one of: business, technology" {
		t.Errorf("server message not surfaced verbatim: %q", apiErr.Message)
	}
	if apiErr.Type != "validation_error" {
		t.Errorf("expected validation_error type, got %q", apiErr.Type)
	}
}

func TestSearchArticlesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the dial fails

	c := NewClient(srv.URL, time.Second)
	_, err := c.SearchArticles(context.Background(), SearchQuery{Text: "x"})
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("transport failure must not be an APIError")
	}
}

func TestListCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/news/categories" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":     "success",
			"categories": []string{"business", "science", "technology"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	cats, err := c.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 3 || cats[0] != "business" {
		t.Errorf("unexpected categories: %v", cats)
	}
}

func TestAddToWorkspace(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/news/add-to-workspace" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "success",
			"message": "News article added to workspace",
			"doc_id":  "doc-123",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	docID, err := c.AddToWorkspace(context.Background(), Article{
		Title: "Some headline",
		URL:   "https://a",
	}, "research")
	if err != nil {
		t.Fatalf("AddToWorkspace: %v", err)
	}
	if docID != "doc-123" {
		t.Errorf("expected doc-123, got %q", docID)
	}
	if gotBody["workspace_name"] != "research" {
		t.Errorf("expected workspace_name=research, got %q", gotBody["workspace_name"])
	}
	// Normalization applied on the wire
	if gotBody["source"] != "Unknown" {
		t.Errorf("expected defaulted source, got %q", gotBody["source"])
	}
	if gotBody["publishedAt"] == "" {
		t.Error("expected defaulted publishedAt")
	}
}

func TestAddToWorkspaceDuplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "duplicate entry",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.AddToWorkspace(context.Background(), Article{URL: "https://a"}, "research")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "duplicate entry" {
		t.Errorf("expected verbatim message, got %q", apiErr.Message)
	}
}

func TestDoNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.ListCategories(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("plain-text error body must not become an APIError")
	}
}
