// Package ui provides the terminal interface for the task list.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todolist/internal/config"
	"github.com/nibzard/todolist/internal/todo"
)

// RunTUI runs the interactive list until the user quits or ctx is done.
func RunTUI(ctx context.Context, cfg *config.Config, manager *todo.Manager, logger *log.Logger) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(cfg, manager, logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

type focus int

const (
	focusInput focus = iota
	focusList
)

type tuiModel struct {
	cfg     *config.Config
	manager *todo.Manager
	logger  *log.Logger

	input  textinput.Model
	keys   keyMap
	help   help.Model
	focus  focus
	cursor int
	width  int
}

func newTUIModel(cfg *config.Config, manager *todo.Manager, logger *log.Logger) *tuiModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = 0 // no limit; pending input is kept verbatim
	ti.Width = 50
	ti.SetValue(manager.PendingInput())
	ti.Focus()

	return &tuiModel{
		cfg:     cfg,
		manager: manager,
		logger:  logger,
		input:   ti,
		keys:    defaultKeyMap(),
		help:    help.New(),
		focus:   focusInput,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.logger.Info("session started", "filter", m.manager.Filter())
	return textinput.Blink
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.SwitchTab) {
			return m, m.toggleFocus()
		}
		if m.focus == focusInput {
			return m, m.updateInput(msg)
		}
		return m, m.updateList(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateInput feeds a key press to the text input, mirrors the buffer into
// the manager, then offers the key to SubmitOnEnter.
func (m *tuiModel) updateInput(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Blur) {
		return m.setFocus(focusList)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.manager.SetPendingInput(m.input.Value())

	before := m.manager.Snapshot().Total
	m.manager.SubmitOnEnter(keyName(msg))
	if after := m.manager.Snapshot(); after.Total > before {
		id := lastTaskID(m.manager)
		for i, t := range after.Tasks {
			if t.ID == id {
				m.cursor = i
			}
		}
		m.logger.Info("task added", "id", id, "total", after.Total)
	}
	m.syncInput()
	m.clampCursor()
	return cmd
}

func (m *tuiModel) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Edit):
		return m.setFocus(focusInput)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.manager.Toggle(t.ID)
			m.logger.Info("task toggled", "id", t.ID, "completed", !t.Completed)
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.manager.Delete(t.ID)
			m.logger.Info("task deleted", "id", t.ID)
		}
	case key.Matches(msg, m.keys.Add):
		before := m.manager.Snapshot().Total
		m.manager.Add(m.manager.PendingInput())
		if m.manager.Snapshot().Total > before {
			m.logger.Info("task added", "id", lastTaskID(m.manager))
		}
		m.syncInput()
	case key.Matches(msg, m.keys.Clear):
		removed := m.manager.Snapshot().Completed
		m.manager.ClearCompleted()
		m.logger.Info("completed tasks cleared", "removed", removed)
	case key.Matches(msg, m.keys.All):
		m.setFilter(todo.FilterAll)
	case key.Matches(msg, m.keys.Active):
		m.setFilter(todo.FilterActive)
	case key.Matches(msg, m.keys.Completed):
		m.setFilter(todo.FilterCompleted)
	case key.Matches(msg, m.keys.Cycle):
		m.setFilter(m.manager.Filter().Next())
	}
	m.clampCursor()
	return nil
}

func (m *tuiModel) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		return m.setFocus(focusList)
	}
	return m.setFocus(focusInput)
}

func (m *tuiModel) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.keys.inputFocused = f == focusInput
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *tuiModel) setFilter(f todo.Filter) {
	if m.manager.Filter() == f {
		return
	}
	m.manager.SetFilter(f)
	m.cursor = 0
	m.logger.Debug("filter changed", "filter", f)
}

// syncInput copies the manager's pending buffer back into the text input,
// which matters after an add clears it.
func (m *tuiModel) syncInput() {
	if m.input.Value() != m.manager.PendingInput() {
		m.input.SetValue(m.manager.PendingInput())
	}
}

func (m *tuiModel) visible() []todo.Task {
	return m.manager.Snapshot().Tasks
}

func (m *tuiModel) selected() (todo.Task, bool) {
	tasks := m.visible()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return todo.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *tuiModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) View() string {
	s := m.manager.Snapshot()
	m.keys.inputFocused = m.focus == focusInput

	var b strings.Builder
	writeHeader(&b, m.cfg)
	m.writeInput(&b)
	writeStats(&b, s.View)
	writeFilters(&b, s.Filter)
	m.writeTasks(&b, s.View)
	writeClear(&b, s.Completed)
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func writeHeader(b *strings.Builder, cfg *config.Config) {
	b.WriteString(styleTitle.Render(cfg.Title) + "\n")
	if cfg.Subtitle != "" {
		b.WriteString(styleSubtle.Render(cfg.Subtitle) + "\n")
	}
	b.WriteString("\n")
}

func (m *tuiModel) writeInput(b *strings.Builder) {
	box := styleInputBox
	if m.focus == focusInput {
		box = styleInputBoxFocused
	}
	b.WriteString(box.Render(m.input.View()) + "\n\n")
}

func writeStats(b *strings.Builder, v todo.View) {
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n\n",
		styleStat.Render(fmt.Sprintf("Total %d", v.Total)),
		styleStat.Render(fmt.Sprintf("Active %d", v.Active)),
		styleStat.Render(fmt.Sprintf("Completed %d", v.Completed)),
	))
}

func writeFilters(b *strings.Builder, current todo.Filter) {
	parts := make([]string, 0, len(todo.Filters))
	for _, f := range todo.Filters {
		if f == current {
			parts = append(parts, styleFilterOn.Render("["+f.Label()+"]"))
			continue
		}
		parts = append(parts, styleFilter.Render(" "+f.Label()+" "))
	}
	b.WriteString("  " + strings.Join(parts, " ") + "\n\n")
}

func (m *tuiModel) writeTasks(b *strings.Builder, v todo.View) {
	if msg := emptyMessage(v); msg != "" {
		b.WriteString("  " + styleSubtle.Render(msg) + "\n\n")
		return
	}
	for i, t := range v.Tasks {
		b.WriteString(formatTask(t, m.focus == focusList && i == m.cursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeClear(b *strings.Builder, completed int) {
	if completed == 0 {
		return
	}
	b.WriteString("  " + styleClear.Render(clearLabel(completed)) + styleSubtle.Render("  press c in the list") + "\n\n")
}

func formatTask(t todo.Task, selected bool) string {
	pointer := " "
	if selected {
		pointer = styleCursor.Render(">")
	}
	box := checkbox(t)
	text := styleText.Render(t.Text)
	if t.Completed {
		box = styleCheck.Render(box)
		text = styleDone.Render(t.Text)
	}
	return fmt.Sprintf("%s %s %s  %s", pointer, box, text, styleSubtle.Render(t.Created))
}

// keyName maps a bubbletea key to the name SubmitOnEnter expects.
func keyName(msg tea.KeyMsg) string {
	if msg.Type == tea.KeyEnter {
		return todo.KeyEnter
	}
	return msg.String()
}

func lastTaskID(m *todo.Manager) string {
	tasks := m.DeriveView(todo.FilterAll).Tasks
	if len(tasks) == 0 {
		return ""
	}
	return tasks[len(tasks)-1].ID
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
