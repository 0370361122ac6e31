package todo

import (
	"slices"
	"strings"
	"time"
)

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source used for creation times.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithIDGenerator overrides the task ID source.
func WithIDGenerator(ids IDGenerator) Option {
	return func(m *Manager) {
		if ids != nil {
			m.ids = ids
		}
	}
}

// WithDateLayout sets the layout used for Task.Created.
func WithDateLayout(layout string) Option {
	return func(m *Manager) {
		if layout != "" {
			m.layout = layout
		}
	}
}

// Manager owns the task list, the pending input and the filter selector.
// It is not safe for concurrent use; one event loop drives it.
type Manager struct {
	tasks   []Task
	pending string
	filter  Filter

	ids    IDGenerator
	now    func() time.Time
	layout string
}

// New returns an empty manager with the filter set to all.
func New(opts ...Option) *Manager {
	m := &Manager{
		filter: FilterAll,
		ids:    &SequenceIDs{},
		now:    time.Now,
		layout: DefaultDateLayout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add appends a task with the trimmed text and clears the pending input.
// Blank text is ignored and leaves the pending input as it was.
func (m *Manager) Add(raw string) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return
	}
	created := m.now()
	m.tasks = append(m.tasks, Task{
		ID:        m.ids.NextID(),
		Text:      text,
		CreatedAt: created,
		Created:   created.Format(m.layout),
	})
	m.pending = ""
}

// SetPendingInput replaces the pending input verbatim.
func (m *Manager) SetPendingInput(text string) {
	m.pending = text
}

// PendingInput returns the text typed but not yet added.
func (m *Manager) PendingInput() string {
	return m.pending
}

// SubmitOnEnter adds the pending input when key is KeyEnter.
func (m *Manager) SubmitOnEnter(key string) {
	if key == KeyEnter {
		m.Add(m.pending)
	}
}

// Toggle flips the completed flag of the task with id.
func (m *Manager) Toggle(id string) {
	if i := m.index(id); i >= 0 {
		m.tasks[i].Completed = !m.tasks[i].Completed
	}
}

// Delete removes the task with id, keeping the order of the rest.
func (m *Manager) Delete(id string) {
	if i := m.index(id); i >= 0 {
		m.tasks = slices.Delete(m.tasks, i, i+1)
	}
}

// ClearCompleted removes every completed task.
func (m *Manager) ClearCompleted() {
	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	// Zero the tail so removed tasks do not linger in the backing array.
	for i := len(kept); i < len(m.tasks); i++ {
		m.tasks[i] = Task{}
	}
	m.tasks = kept
}

// SetFilter changes the filter selector. Unknown values are ignored.
func (m *Manager) SetFilter(f Filter) {
	if f.Valid() {
		m.filter = f
	}
}

// Filter returns the current filter selector.
func (m *Manager) Filter() Filter {
	return m.filter
}

// Task returns a copy of the task with id.
func (m *Manager) Task(id string) (Task, bool) {
	if i := m.index(id); i >= 0 {
		return m.tasks[i], true
	}
	return Task{}, false
}

// DeriveView computes counts over all tasks and the ordered tasks visible
// under f. The returned slice is a fresh copy.
func (m *Manager) DeriveView(f Filter) View {
	v := View{
		Tasks: make([]Task, 0, len(m.tasks)),
		Total: len(m.tasks),
	}
	for _, t := range m.tasks {
		if t.Completed {
			v.Completed++
		}
		if f.Match(t) {
			v.Tasks = append(v.Tasks, t)
		}
	}
	v.Active = v.Total - v.Completed
	return v
}

// Snapshot returns the view for the current filter together with the
// selector and pending input.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{
		View:         m.DeriveView(m.filter),
		Filter:       m.filter,
		PendingInput: m.pending,
	}
}

func (m *Manager) index(id string) int {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
