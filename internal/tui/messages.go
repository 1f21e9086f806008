package tui

import "github.com/matheuskafuri/newsdesk/internal/news"

type categoriesLoadedMsg struct {
	categories []string
	err        error
}

type searchDoneMsg struct {
	articles []news.Article
	err      error
}

type addDoneMsg struct {
	id    string
	title string
	err   error
}

// clearNoticeMsg retires a success notice. The sequence number lets a
// newer notice supersede a stale pending clear.
type clearNoticeMsg struct {
	seq int
}

type recentLoadedMsg struct {
	queries []string
}
