package tui

import (
	"strings"
	"testing"

	"github.com/matheuskafuri/newsdesk/internal/news"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestPublishedLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2026-07-04T12:00:00Z", "Jul 4, 2026"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := publishedLabel(tt.input); got != tt.want {
			t.Errorf("publishedLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}

func TestRenderResultItemAddedMark(t *testing.T) {
	a := news.Article{Title: "Headline", URL: "https://a", Source: "AP"}

	plain := renderResultItem(a, false, false, 40)
	if strings.Contains(plain, "✓") {
		t.Error("unadded item must not carry the added mark")
	}

	added := renderResultItem(a, false, true, 40)
	if !strings.Contains(added, "✓") {
		t.Error("added item must carry the added mark")
	}
}

func TestRenderResultsEmpty(t *testing.T) {
	got := renderResults(nil, 0, 10, 40, map[string]bool{})
	if !strings.Contains(got, "No results") {
		t.Errorf("expected empty placeholder, got %q", got)
	}
}

func TestRenderResultsScrollsToCursor(t *testing.T) {
	articles := make([]news.Article, 10)
	for i := range articles {
		articles[i] = news.Article{Title: string(rune('A' + i)), URL: "u"}
	}
	// Height for 2 items; cursor at the end must still be visible
	got := renderResults(articles, 9, 6, 40, map[string]bool{})
	if !strings.Contains(got, "J") {
		t.Errorf("cursor item not visible: %q", got)
	}
	if strings.Contains(got, "A") {
		t.Errorf("scrolled-off items must not render: %q", got)
	}
}

func TestRenderDetailNoWorkspace(t *testing.T) {
	a := news.Article{Title: "Headline", URL: "https://a", Source: "AP"}
	got := renderDetail(&a, 50, 20, "", false, false)
	if !strings.Contains(got, "add disabled") {
		t.Errorf("expected disabled hint without workspace, got %q", got)
	}
}

func TestCategoryBarSingleSelect(t *testing.T) {
	b := newCategoryBar()
	b.setCategories([]string{"business", "science", "sports"})

	b.cursor = 1
	b.selectCurrent()
	if b.selected != "science" {
		t.Errorf("expected science selected, got %q", b.selected)
	}

	b.cursor = 2
	b.selectCurrent()
	if b.selected != "sports" {
		t.Errorf("selection must be single-valued, got %q", b.selected)
	}

	// Re-selecting toggles back to All
	b.selectCurrent()
	if b.selected != "" {
		t.Errorf("expected toggle back to All, got %q", b.selected)
	}
}
