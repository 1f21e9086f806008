package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(found int, searched bool, workspace string, width int, typing, loading bool) string {
	left := ""
	switch {
	case loading:
		left = " Searching..."
	case searched:
		left = fmt.Sprintf(" Found %d articles", found)
	}

	if workspace != "" {
		left += " · workspace: " + workspace
	} else {
		left += " · " + noticeErrorStyle.Render("no workspace")
	}

	right := " / search  f category  a add  o open  q quit "
	if typing {
		right = " enter search  esc cancel "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
