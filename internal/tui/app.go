// Package tui implements the news search screen: a query input, a
// category filter, a result list, and per-article add-to-workspace
// actions against the configured backend.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsdesk/internal/browser"
	"github.com/matheuskafuri/newsdesk/internal/news"
	"github.com/matheuskafuri/newsdesk/internal/workspace"
)

// Fixed user-facing messages.
const (
	msgBlankQuery  = "Please enter a search query"
	msgNoResults   = "No news articles found. Try a different search query."
	msgSearchFail  = "Failed to search news. Please try again."
	msgAddFail     = "Failed to add article to workspace."
	msgNoWorkspace = "Select a workspace first (newsdesk workspace set <name>)"
)

// Success notices auto-clear after this delay.
const noticeClearDelay = 3 * time.Second

const requestTimeout = 30 * time.Second

// newsAPI is the slice of the news client this screen uses.
type newsAPI interface {
	SearchArticles(ctx context.Context, q news.SearchQuery) ([]news.Article, error)
	ListCategories(ctx context.Context) ([]string, error)
	AddToWorkspace(ctx context.Context, a news.Article, workspaceName string) (string, error)
}

// historian records submitted queries; *workspace.Store implements it.
type historian interface {
	RecordSearch(query string) error
	RecentSearches(limit int) ([]string, error)
}

type mode int

const (
	modeTyping mode = iota
	modeResults
	modeCategory
)

type App struct {
	client    newsAPI
	history   historian
	workspace string // active workspace name, "" when none selected
	language  string
	pageSize  int

	width  int
	height int
	mode   mode

	searchInput textinput.Model
	spinner     spinner.Model
	categories  categoryBar

	loading  bool
	searched bool // at least one search has settled
	articles []news.Article
	cursor   int
	recent   []string

	errMsg     string
	successMsg string
	noticeSeq  int

	// Per-article state keyed by news.Article.ID()
	pending map[string]bool
	added   map[string]bool
}

// RunOpts holds all parameters for launching the search screen. The
// active workspace is resolved by the caller and injected here; the
// screen never looks it up on its own.
type RunOpts struct {
	Client    *news.Client
	History   *workspace.Store
	Workspace string
	Language  string
	PageSize  int
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search news..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 200
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	a := &App{
		client:      opts.Client,
		workspace:   opts.Workspace,
		language:    opts.Language,
		pageSize:    opts.PageSize,
		searchInput: ti,
		spinner:     sp,
		categories:  newCategoryBar(),
		mode:        modeTyping,
		pending:     make(map[string]bool),
		added:       make(map[string]bool),
	}
	if opts.History != nil {
		a.history = opts.History
	}
	if a.language == "" {
		a.language = "en"
	}
	if a.pageSize <= 0 {
		a.pageSize = 20
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchCategoriesCmd(), a.loadRecentCmd(), textinput.Blink)
}

func (a *App) fetchCategoriesCmd() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		categories, err := client.ListCategories(ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (a *App) loadRecentCmd() tea.Cmd {
	if a.history == nil {
		return nil
	}
	h := a.history
	return func() tea.Msg {
		queries, err := h.RecentSearches(5)
		if err != nil {
			return nil
		}
		return recentLoadedMsg{queries: queries}
	}
}

// submit validates and launches a search. A blank query never reaches
// the backend; a submit while one is in flight is dropped.
func (a *App) submit() tea.Cmd {
	if a.loading {
		return nil
	}

	text := strings.TrimSpace(a.searchInput.Value())
	if text == "" {
		a.errMsg = msgBlankQuery
		a.successMsg = ""
		return nil
	}

	a.errMsg = ""
	a.successMsg = ""
	a.articles = nil
	a.cursor = 0
	a.searched = false
	a.loading = true

	query := news.SearchQuery{
		Text:     text,
		Category: a.categories.selected,
		Language: a.language,
		PageSize: a.pageSize,
	}
	client := a.client

	cmds := []tea.Cmd{
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			articles, err := client.SearchArticles(ctx, query)
			return searchDoneMsg{articles: articles, err: err}
		},
		a.spinner.Tick,
	}

	if a.history != nil {
		h := a.history
		cmds = append(cmds, func() tea.Msg {
			if err := h.RecordSearch(text); err != nil {
				return nil
			}
			queries, err := h.RecentSearches(5)
			if err != nil {
				return nil
			}
			return recentLoadedMsg{queries: queries}
		})
	}

	return tea.Batch(cmds...)
}

// addCurrent launches an add for the article under the cursor,
// honoring the workspace guard and the pending/added maps.
func (a *App) addCurrent() tea.Cmd {
	if len(a.articles) == 0 || a.cursor >= len(a.articles) {
		return nil
	}
	article := a.articles[a.cursor]
	id := article.ID()

	if a.added[id] || a.pending[id] {
		return nil
	}
	if a.workspace == "" {
		a.errMsg = msgNoWorkspace
		a.successMsg = ""
		return nil
	}

	a.pending[id] = true
	a.errMsg = ""
	a.successMsg = ""

	client := a.client
	ws := a.workspace
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := client.AddToWorkspace(ctx, article, ws)
		return addDoneMsg{id: id, title: article.Title, err: err}
	}
}

func (a *App) openCurrent() tea.Cmd {
	if len(a.articles) == 0 || a.cursor >= len(a.articles) {
		return nil
	}
	url := a.articles[a.cursor].URL
	return func() tea.Msg {
		browser.Open(url)
		return nil
	}
}

// noticeMessage extracts the backend-supplied message from an error,
// falling back to fixed text for transport failures.
func noticeMessage(err error, fallback string) string {
	var apiErr *news.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case categoriesLoadedMsg:
		// Backend failure here is silent: the filter simply stays empty.
		if msg.err == nil {
			a.categories.setCategories(msg.categories)
		}
		return a, nil

	case recentLoadedMsg:
		a.recent = msg.queries
		return a, nil

	case searchDoneMsg:
		a.loading = false
		a.searched = true
		if msg.err != nil {
			a.errMsg = noticeMessage(msg.err, msgSearchFail)
			return a, nil
		}
		if len(msg.articles) == 0 {
			a.errMsg = msgNoResults
			return a, nil
		}
		a.articles = msg.articles
		a.cursor = 0
		a.mode = modeResults
		a.searchInput.Blur()
		return a, nil

	case addDoneMsg:
		delete(a.pending, msg.id)
		if msg.err != nil {
			a.errMsg = noticeMessage(msg.err, msgAddFail)
			a.successMsg = ""
			return a, nil
		}
		a.added[msg.id] = true
		a.errMsg = ""
		a.successMsg = fmt.Sprintf("Added %q to %s", msg.title, a.workspace)
		a.noticeSeq++
		seq := a.noticeSeq
		return a, tea.Tick(noticeClearDelay, func(time.Time) tea.Msg {
			return clearNoticeMsg{seq: seq}
		})

	case clearNoticeMsg:
		// Only the latest notice's timer may clear it.
		if msg.seq == a.noticeSeq {
			a.successMsg = ""
		}
		return a, nil

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeTyping:
		return a.handleTypingKey(msg)
	case modeCategory:
		return a.handleCategoryKey(msg)
	}

	// Results mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.articles)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "a", "enter":
		return a, a.addCurrent()
	case "o":
		return a, a.openCurrent()
	case "/":
		a.mode = modeTyping
		a.searchInput.Focus()
		return a, textinput.Blink
	case "f":
		if len(a.categories.categories) > 0 {
			a.mode = modeCategory
			a.categories.pickMode = true
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return a, a.submit()
	case "esc":
		if len(a.articles) > 0 {
			a.mode = modeResults
			a.searchInput.Blur()
		}
		return a, nil
	case "ctrl+f":
		if len(a.categories.categories) > 0 {
			a.mode = modeCategory
			a.categories.pickMode = true
			a.searchInput.Blur()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) handleCategoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.exitCategoryMode()
		return a, nil
	case "left", "h":
		if a.categories.cursor > 0 {
			a.categories.cursor--
		}
		return a, nil
	case "right", "l":
		if a.categories.cursor < len(a.categories.categories)-1 {
			a.categories.cursor++
		}
		return a, nil
	case " ", "enter":
		a.categories.selectCurrent()
		a.exitCategoryMode()
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < len(a.categories.categories) {
			a.categories.cursor = idx
			a.categories.selectCurrent()
			a.exitCategoryMode()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) exitCategoryMode() {
	a.categories.pickMode = false
	if len(a.articles) > 0 {
		a.mode = modeResults
	} else {
		a.mode = modeTyping
		a.searchInput.Focus()
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  newsdesk")
	}

	// Header
	headerLeft := headerStyle.Render("newsdesk")
	headerRight := headerDateStyle.Render(time.Now().Format("Jan 2"))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	search := a.searchInput.View()
	filter := a.categories.render(a.width)

	headerHeight := 1
	searchHeight := 1
	filterHeight := 1
	noticeHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - searchHeight - filterHeight - noticeHeight - statusHeight - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	content := a.renderContent(contentHeight)
	notice := a.renderNotice()
	status := renderStatusBar(
		len(a.articles),
		a.searched && a.errMsg == "",
		a.workspace,
		a.width,
		a.mode == modeTyping,
		a.loading,
	)
	if a.loading {
		status = a.spinner.View() + " " + status
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, search, filter, content, notice, status)
}

func (a *App) renderContent(height int) string {
	if a.loading {
		return centerText("Searching...", a.width, height)
	}

	if len(a.articles) == 0 {
		return a.renderIdle(height)
	}

	listWidth := int(float64(a.width) * 0.35)
	detailWidth := a.width - listWidth - 1 // gap

	innerListW := listWidth - 4 // border + padding
	listContent := renderResults(a.articles, a.cursor, height, innerListW, a.added)

	var listPane string
	if a.mode == modeResults {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(height).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(height).Render(listContent)
	}

	var selected *news.Article
	if a.cursor < len(a.articles) {
		selected = &a.articles[a.cursor]
	}
	var pending, added bool
	if selected != nil {
		pending = a.pending[selected.ID()]
		added = a.added[selected.ID()]
	}
	innerDetailW := detailWidth - 4
	detailContent := renderDetail(selected, innerDetailW, height, a.workspace, pending, added)
	detailPane := detailPaneStyle.Width(detailWidth - 2).Height(height).Render(detailContent)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

func (a *App) renderIdle(height int) string {
	var lines []string
	lines = append(lines, "")
	lines = append(lines, idleHintStyle.Render("  Type a query and press enter to search the news."))
	if len(a.recent) > 0 {
		lines = append(lines, "")
		lines = append(lines, idleHintStyle.Render("  Recent searches:"))
		for _, q := range a.recent {
			lines = append(lines, "    "+itemTitleStyle.Render(q))
		}
	}
	content := strings.Join(lines, "\n")
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < height {
		content += strings.Repeat("\n", height-contentLines)
	}
	return content
}

// renderNotice shows at most one message: an error or a success,
// never both.
func (a *App) renderNotice() string {
	switch {
	case a.errMsg != "":
		return noticeErrorStyle.Render(" " + a.errMsg)
	case a.successMsg != "":
		return noticeSuccessStyle.Render(" " + a.successMsg)
	default:
		return ""
	}
}

// Run starts the search screen.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
