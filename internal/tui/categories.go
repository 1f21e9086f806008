package tui

import "github.com/charmbracelet/lipgloss"

// categoryBar is a single-select row of category tabs. An empty
// selection means no category filter ("All").
type categoryBar struct {
	categories []string
	selected   string
	pickMode   bool
	cursor     int
}

func newCategoryBar() categoryBar {
	return categoryBar{}
}

func (b *categoryBar) setCategories(categories []string) {
	b.categories = categories
	if b.cursor >= len(categories) {
		b.cursor = 0
	}
}

func (b *categoryBar) selectCurrent() {
	if b.cursor >= len(b.categories) {
		return
	}
	current := b.categories[b.cursor]
	if b.selected == current {
		b.selected = "" // toggle off, back to All
	} else {
		b.selected = current
	}
}

func (b *categoryBar) render(width int) string {
	if len(b.categories) == 0 {
		return lipgloss.NewStyle().Background(colorTabBg).Width(width).Render("")
	}

	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	if b.selected == "" {
		parts = append(parts, tabActiveStyle.Render("All"))
	} else {
		parts = append(parts, tabInactiveStyle.Render("All"))
	}

	for i, c := range b.categories {
		style := tabInactiveStyle
		if b.selected == c {
			style = tabActiveStyle
		}
		label := c
		if b.pickMode && i == b.cursor {
			label = "[" + c + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorTabBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
