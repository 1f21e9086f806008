// Package news wraps the backend's news endpoints: article search,
// category listing, and attaching an article to a workspace.
//
// Failures never panic and never lose the server's explanation: when
// the backend answered with a structured error payload, the returned
// error is an *APIError carrying that message verbatim; transport
// failures come back as wrapped errors for the caller to replace with
// its own fallback text.
package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError is a failure the backend reported itself, as opposed to a
// transport failure reaching it.
type APIError struct {
	StatusCode int
	Message    string
	Type       string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type searchRequest struct {
	Query    string `json:"query"`
	Category string `json:"category,omitempty"`
	Language string `json:"language"`
	PageSize int    `json:"page_size"`
}

type searchResponse struct {
	Articles []Article `json:"articles"`
	Count    int       `json:"count"`
}

// SearchArticles runs one search. The query text is sent as-is; the
// caller has already validated it is non-empty.
func (c *Client) SearchArticles(ctx context.Context, q SearchQuery) ([]Article, error) {
	req := searchRequest{
		Query:    q.Text,
		Category: q.Category,
		Language: q.Language,
		PageSize: q.PageSize,
	}
	if req.Language == "" {
		req.Language = "en"
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, "/news/search", req, &resp); err != nil {
		return nil, err
	}
	return resp.Articles, nil
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// ListCategories fetches the backend's fixed set of category labels.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var resp categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/news/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

type addRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	Workspace   string `json:"workspace_name"`
}

type addResponse struct {
	Message string `json:"message"`
	DocID   string `json:"doc_id"`
}

// AddToWorkspace stores the article in the named workspace. The
// article is normalized first so the backend never sees missing
// source or publish date fields. Returns the stored document id.
func (c *Client) AddToWorkspace(ctx context.Context, a Article, workspace string) (string, error) {
	a = a.Normalized()
	req := addRequest{
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		URL:         a.URL,
		Source:      a.Source,
		PublishedAt: a.PublishedAt,
		Workspace:   workspace,
	}

	var resp addResponse
	if err := c.do(ctx, http.MethodPost, "/news/add-to-workspace", req, &resp); err != nil {
		return "", err
	}
	return resp.DocID, nil
}

// errorPayload is the backend's error envelope:
// {"status": "error", "message": ..., "error_type": ...}
type errorPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Type    string `json:"error_type"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload errorPayload
		if json.Unmarshal(data, &payload) == nil && payload.Message != "" {
			return &APIError{
				StatusCode: resp.StatusCode,
				Message:    payload.Message,
				Type:       payload.Type,
			}
		}
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}
