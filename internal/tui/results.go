package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsdesk/internal/news"
)

func publishedLabel(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("Jan 2, 2006")
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderResultItem(a news.Article, selected, added bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(a.Title, width-4))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(a.Title, width-4))
	}

	meta := "  " + itemSourceStyle.Render(a.Source)
	if a.PublishedAt != "" {
		meta += " " + itemTimeStyle.Render("· "+publishedLabel(a.PublishedAt))
	}
	if added {
		meta += " " + itemAddedStyle.Render("✓")
	}

	return title + "\n" + meta
}

func renderResults(articles []news.Article, cursor, height, width int, added map[string]bool) string {
	if len(articles) == 0 {
		return centerText("No results", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderResultItem(articles[i], i == cursor, added[articles[i].ID()], width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderDetail(a *news.Article, width, height int, workspace string, pending, added bool) string {
	if a == nil {
		return centerText("Select an article", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := detailTitleStyle.Width(contentWidth).Render(a.Title)
	source := detailSourceStyle.Render(
		fmt.Sprintf("%s · %s", a.Source, publishedLabel(a.PublishedAt)),
	)

	desc := a.Description
	if desc == "" {
		desc = "(No description available)"
	}
	body := detailBodyStyle.Width(contentWidth).Render(wrapText(desc, contentWidth))
	link := detailLinkStyle.Width(contentWidth).Render("Read more: " + a.URL)

	var action string
	switch {
	case added:
		action = itemAddedStyle.Render("✓ Added to " + workspace)
	case pending:
		action = idleHintStyle.Render("Adding to " + workspace + "...")
	case workspace == "":
		action = idleHintStyle.Render("No workspace selected — add disabled")
	default:
		action = idleHintStyle.Render("a  add to " + workspace)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, source, "", body, "", link, "", action)

	lines := strings.Split(content, "\n")
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

func centerText(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
