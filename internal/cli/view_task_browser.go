package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/trainingtask/internal/cli/formatter"
	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/service"
	"github.com/alexanderramin/trainingtask/internal/taskform"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tasksLoadedMsg struct {
	tasks []domain.Task
	err   error
}

type taskRemovedMsg struct {
	id  string
	err error
}

type browserKeys struct {
	Up      key.Binding
	Down    key.Binding
	Filter  key.Binding
	Remove  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k browserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Remove, k.Refresh, k.Quit}
}

func (k browserKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultBrowserKeys() browserKeys {
	return browserKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// taskBrowser lists tasks with a detail pane for the selected one.
type taskBrowser struct {
	ctx   context.Context
	tasks service.TaskService

	all       []domain.Task
	cursor    int
	filter    textinput.Model
	filtering bool
	confirm   bool
	loading   bool
	err       error
	notice    string
	width     int

	keys browserKeys
	help help.Model
}

func newTaskBrowser(ctx context.Context, tasks service.TaskService) *taskBrowser {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name, project or employee"
	return &taskBrowser{
		ctx:     ctx,
		tasks:   tasks,
		filter:  ti,
		loading: true,
		keys:    defaultBrowserKeys(),
		help:    help.New(),
	}
}

func (m *taskBrowser) Init() tea.Cmd {
	return m.load()
}

func (m *taskBrowser) load() tea.Cmd {
	ctx, svc := m.ctx, m.tasks
	return func() tea.Msg {
		tasks, err := svc.List(ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m *taskBrowser) remove(id string) tea.Cmd {
	ctx, svc := m.ctx, m.tasks
	return func() tea.Msg {
		return taskRemovedMsg{id: id, err: svc.Remove(ctx, id)}
	}
}

// visible returns the tasks matching the filter, in list order.
func (m *taskBrowser) visible() []domain.Task {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		return m.all
	}
	var out []domain.Task
	for _, t := range m.all {
		hay := strings.ToLower(t.Name + "\x00" + t.Project.Name + "\x00" + t.Employee.FullName())
		if strings.Contains(hay, q) {
			out = append(out, t)
		}
	}
	return out
}

func (m *taskBrowser) selected() (domain.Task, bool) {
	v := m.visible()
	if m.cursor < 0 || m.cursor >= len(v) {
		return domain.Task{}, false
	}
	return v[m.cursor], true
}

func (m *taskBrowser) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *taskBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tasksLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.all = msg.tasks
			m.clampCursor()
		}
		return m, nil

	case taskRemovedMsg:
		if msg.err != nil {
			m.notice = formatter.FormatError(msg.err)
			return m, nil
		}
		m.notice = "Removed task " + formatter.TruncID(msg.id)
		m.loading = true
		return m, m.load()

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		if m.confirm {
			return m.updateConfirm(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *taskBrowser) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.clampCursor()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m *taskBrowser) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirm = false
	if msg.String() != "y" {
		m.notice = formatter.Dim("Delete cancelled.")
		return m, nil
	}
	t, ok := m.selected()
	if !ok {
		return m, nil
	}
	return m, m.remove(t.ID)
}

func (m *taskBrowser) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case msg.Type == tea.KeyEsc && m.filter.Value() != "":
		m.filter.SetValue("")
		m.clampCursor()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Remove):
		if t, ok := m.selected(); ok {
			m.confirm = true
			m.notice = fmt.Sprintf("Delete %q? (y/n)", t.Name)
		}
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m *taskBrowser) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading tasks...")
	}
	if m.err != nil {
		return "\n  " + formatter.FormatError(m.err) + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Tasks"))
	b.WriteString("\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString(formatter.Dim("No tasks match.") + "\n")
	}
	for i, t := range visible {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		line := fmt.Sprintf("%s%s  %s  %s",
			cursor,
			formatter.StatusPill(t.Status),
			t.Name,
			formatter.Dim(t.Project.Name+" · "+taskform.FormatDate(t.EndDate)),
		)
		if m.width > 0 {
			line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
		}
		b.WriteString(line + "\n")
	}

	if t, ok := m.selected(); ok {
		b.WriteString("\n")
		b.WriteString(formatter.FormatTask(t))
	}

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("\n" + m.filter.View() + "\n")
	}
	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
