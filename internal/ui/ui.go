package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/tdx/internal/dashboard"
	"github.com/desertthunder/tdx/internal/formatter"
	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/services"
	"github.com/desertthunder/tdx/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	DashboardView ViewState = iota
	FormView
	ConfirmDeleteView
)

// searchDebounce is how long typing in the search box must pause before the
// term is committed and a fetch fires.
const searchDebounce = 250 * time.Millisecond

type tasksFetchedMsg struct {
	seq    int
	result services.ListResult
}

type taskSavedMsg struct {
	result  services.TaskResult
	created bool
}

type taskDeletedMsg struct {
	id     models.TaskID
	result services.ActionResult
}

type searchDebounceMsg struct {
	tag int
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	service services.Service
	state   *dashboard.State
	logger  *log.Logger
	clock   func() time.Time

	cursor      int
	spinner     spinner.Model
	searching   bool
	searchInput textinput.Model
	searchTag   int

	form     *taskForm
	editing  *models.Task
	deleting *models.Task

	statusLine string
	width      int
	height     int
	help       help.Model
	keys       keyMap

	// RecordSearch, when set, receives each committed non-blank search term.
	// It runs on a command goroutine, so it may do IO.
	RecordSearch func(term string)
}

// NewModel creates a new TUI model with the provided dependencies. A nil
// logger discards output.
func NewModel(ctx context.Context, service services.Service, query dashboard.Query, logger *log.Logger) *Model {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}

	search := textinput.New()
	search.Placeholder = "Search tasks"
	search.CharLimit = 100
	search.SetValue(query.Search)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.warn

	return &Model{
		ctx:         ctx,
		view:        DashboardView,
		service:     service,
		state:       dashboard.NewState(query),
		spinner:     sp,
		logger:      logger,
		clock:       time.Now,
		searchInput: search,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Query returns the current list query, for persisting preferences on exit.
func (m *Model) Query() dashboard.Query {
	return m.state.Query
}

// Init kicks off the first task fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.beginFetch())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tasksFetchedMsg:
		if m.state.ApplyFetch(msg.seq, msg.result) {
			m.clampCursor()
			if !msg.result.OK {
				m.logger.Error("task fetch failed", "error", msg.result.Err)
			}
		}
		return m, nil

	case taskSavedMsg:
		m.state.EndAction()
		if !msg.result.OK {
			if m.form != nil {
				m.form.banner = msg.result.Err
			}
			return m, nil
		}
		m.form = nil
		m.editing = nil
		m.view = DashboardView
		if msg.created {
			m.statusLine = styles.ok.Render("Task created")
		} else {
			m.statusLine = styles.ok.Render("Task updated")
		}
		return m, m.beginFetch()

	case taskDeletedMsg:
		m.state.EndAction()
		m.deleting = nil
		m.view = DashboardView
		if !msg.result.OK {
			m.statusLine = styles.err.Render(msg.result.Err)
			return m, nil
		}
		m.statusLine = styles.ok.Render("Task deleted")
		return m, m.beginFetch()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchDebounceMsg:
		if msg.tag != m.searchTag {
			return m, nil
		}
		return m, m.commitSearch()

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case FormView:
		if m.form != nil {
			return m.form.view()
		}
		return ""
	case ConfirmDeleteView:
		return m.renderConfirm()
	default:
		return m.renderDashboard()
	}
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	switch m.view {
	case FormView:
		return m.handleFormKeys(msg)
	case ConfirmDeleteView:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleDashboardKeys(msg)
	}
}

func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggle):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.filter):
		return m, m.cycleFilter()
	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.down):
		if m.cursor < len(m.state.Tasks)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.create):
		if m.state.Busy() {
			return m, nil
		}
		m.form = newTaskForm(models.TaskDraft{Status: models.StatusTodo}, false)
		m.view = FormView
		m.statusLine = ""
		return m, textinput.Blink
	case key.Matches(msg, m.keys.edit):
		task := m.selectedTask()
		if task == nil || m.state.Busy() {
			return m, nil
		}
		m.editing = task
		m.form = newTaskForm(models.DraftFromTask(*task), true)
		m.view = FormView
		m.statusLine = ""
		return m, textinput.Blink
	case key.Matches(msg, m.keys.del):
		task := m.selectedTask()
		if task == nil || m.state.Busy() {
			return m, nil
		}
		m.deleting = task
		m.view = ConfirmDeleteView
		return m, nil
	case key.Matches(msg, m.keys.refresh):
		return m, m.beginFetch()
	case key.Matches(msg, m.keys.prevPage):
		return m.navigate(m.state.PrevPage)
	case key.Matches(msg, m.keys.nextPage):
		return m.navigate(m.state.NextPage)
	case key.Matches(msg, m.keys.first):
		return m.navigate(m.state.FirstPage)
	case key.Matches(msg, m.keys.last):
		return m.navigate(m.state.LastPage)
	case key.Matches(msg, m.keys.fewer):
		return m, m.stepPerPage(-1)
	case key.Matches(msg, m.keys.more):
		return m, m.stepPerPage(1)
	}
	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, m.commitSearch()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	m.searchTag++
	tag := m.searchTag
	tick := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{tag: tag}
	})
	return m, tea.Batch(cmd, tick)
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.form = nil
		m.editing = nil
		m.view = DashboardView
		return m, nil
	case "tab":
		m.form.focusNext()
		return m, nil
	case "shift+tab":
		m.form.focusPrev()
		return m, nil
	case "ctrl+s":
		return m, m.submitForm()
	case "enter":
		// the textarea needs enter for newlines
		if m.form.focus != focusDescription {
			if m.form.focus == m.form.lastFocus() {
				return m, m.submitForm()
			}
			m.form.focusNext()
			return m, nil
		}
	}
	return m, m.form.update(msg)
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.yes):
		if m.deleting == nil || !m.state.BeginAction() {
			return m, nil
		}
		id := m.deleting.ID
		return m, func() tea.Msg {
			return taskDeletedMsg{id: id, result: m.service.DeleteTask(m.ctx, id)}
		}
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.back):
		m.deleting = nil
		m.view = DashboardView
		return m, nil
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) beginFetch() tea.Cmd {
	seq := m.state.BeginFetch()
	query := m.state.Query.ListQuery()
	return func() tea.Msg {
		return tasksFetchedMsg{seq: seq, result: m.service.FetchTasks(m.ctx, query)}
	}
}

func (m *Model) commitSearch() tea.Cmd {
	term := m.searchInput.Value()
	if !m.state.SetSearch(term) {
		return nil
	}
	m.cursor = 0

	record := m.RecordSearch
	trimmed := strings.TrimSpace(term)
	fetch := m.beginFetch()
	if record == nil || trimmed == "" {
		return fetch
	}
	return func() tea.Msg {
		record(trimmed)
		return fetch()
	}
}

func (m *Model) cycleFilter() tea.Cmd {
	order := append([]models.TaskStatus{""}, models.Statuses()...)
	idx := 0
	for i, s := range order {
		if s == m.state.Query.Status {
			idx = i
			break
		}
	}
	if !m.state.SetStatus(order[(idx+1)%len(order)]) {
		return nil
	}
	m.cursor = 0
	return m.beginFetch()
}

func (m *Model) navigate(move func() bool) (tea.Model, tea.Cmd) {
	if !move() {
		return m, nil
	}
	m.cursor = 0
	return m, m.beginFetch()
}

func (m *Model) stepPerPage(delta int) tea.Cmd {
	opts := dashboard.PerPageOptions
	idx := 0
	for i, n := range opts {
		if n == m.state.Query.PerPage {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 || idx >= len(opts) {
		return nil
	}
	if !m.state.SetPerPage(opts[idx]) {
		return nil
	}
	m.cursor = 0
	return m.beginFetch()
}

func (m *Model) submitForm() tea.Cmd {
	draft := m.form.draft()
	errs := draft.Validate(m.clock())
	m.form.setErrors(errs)
	if len(errs) > 0 {
		return nil
	}
	if !m.state.BeginAction() {
		return nil
	}
	m.form.banner = ""

	if m.editing != nil {
		id := m.editing.ID
		return func() tea.Msg {
			return taskSavedMsg{result: m.service.UpdateTask(m.ctx, id, draft)}
		}
	}
	return func() tea.Msg {
		return taskSavedMsg{result: m.service.CreateTask(m.ctx, draft), created: true}
	}
}

func (m *Model) selectedTask() *models.Task {
	if m.cursor < 0 || m.cursor >= len(m.state.Tasks) {
		return nil
	}
	task := m.state.Tasks[m.cursor]
	return &task
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Tasks) {
		m.cursor = len(m.state.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) renderDashboard() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Task Dashboard"))
	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	switch {
	case m.state.Phase == dashboard.PhaseLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(styles.dim.Render("Loading tasks..."))
		b.WriteString("\n")
	case m.state.Phase == dashboard.PhaseError:
		b.WriteString(styles.err.Render(m.state.ErrMsg))
		b.WriteString("\n")
		b.WriteString(styles.help.Render("press r to retry"))
		b.WriteString("\n")
	case len(m.state.Tasks) == 0:
		b.WriteString(styles.dim.Render(m.state.EmptyMessage()))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderTasks())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderStats() string {
	stats := m.state.Stats(m.clock())
	return styles.dim.Render(fmt.Sprintf(
		"%d total • %d to do • %d in progress • %d on hold • %d done • %d due today",
		stats.TotalTasks, stats.TodoTasks, stats.InProgressTasks,
		stats.OnHoldTasks, stats.CompletedTasks, stats.DueTodayTasks,
	))
}

func (m *Model) renderFilters() string {
	var parts []string

	if m.searching {
		parts = append(parts, m.searchInput.View())
	} else if term := strings.TrimSpace(m.searchInput.Value()); term != "" {
		parts = append(parts, fmt.Sprintf("search: %q", term))
	}

	if status := m.state.Query.Status; status != "" {
		parts = append(parts, fmt.Sprintf("filter: %s", statusBadge(status)))
	}

	if len(parts) == 0 {
		return styles.help.Render("press / to search, f to filter")
	}
	return strings.Join(parts, "  ")
}

func (m *Model) renderTasks() string {
	var b strings.Builder
	now := m.clock()

	for i, task := range m.state.Tasks {
		marker := "  "
		title := task.Title
		if i == m.cursor {
			marker = styles.selected.Render("> ")
			title = styles.selected.Render(title)
		}

		due := models.FormatDate(task.DueDate)
		switch {
		case task.Overdue(now):
			due = styles.warn.Render(due + " (overdue)")
		case task.DueToday(now):
			due = styles.warn.Render(due + " (today)")
		default:
			due = styles.dim.Render(due)
		}

		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n", marker, statusBadge(task.Status), title, due))
	}
	return b.String()
}

func (m *Model) renderFooter() string {
	info := m.state.PageInfo()

	pages := make([]string, 0, len(info.Pages))
	for _, p := range info.Pages {
		if p == m.state.Query.Page {
			pages = append(pages, styles.selected.Render(fmt.Sprintf("[%d]", p)))
		} else {
			pages = append(pages, fmt.Sprintf("%d", p))
		}
	}

	return fmt.Sprintf("%s\n%s  %s",
		styles.dim.Render(formatter.PageSummary(info, m.state.TotalCount)),
		strings.Join(pages, " "),
		styles.dim.Render(fmt.Sprintf("%d/page", m.state.Query.PerPage)),
	)
}

func (m *Model) renderConfirm() string {
	if m.deleting == nil {
		return ""
	}

	title := styles.title.Render("Delete this task?")
	info := fmt.Sprintf("\n%s\nDue %s\n", m.deleting.Title, models.FormatDate(m.deleting.DueDate))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no, m.keys.quit})
	return fmt.Sprintf("%s%s\n%s", title, info, helpView)
}
