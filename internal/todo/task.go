package todo

import (
	"fmt"
	"time"
)

// KeyEnter is the key name that commits the pending input.
const KeyEnter = "Enter"

// DefaultDateLayout formats creation times like an en-US locale string.
const DefaultDateLayout = "1/2/2006, 3:04:05 PM"

// Task is a single to-do item.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	Created   string    `json:"created"`
}

// Filter selects which tasks a view shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the selector states in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter converts a filter name into a Filter.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	default:
		return "", fmt.Errorf("invalid filter %q, must be one of: all, active, completed", s)
	}
}

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	_, err := ParseFilter(string(f))
	return err == nil
}

// Match reports whether t is visible under f.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Label is the capitalized filter name used by the UI.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// View is the derived, read-only result of applying a filter.
type View struct {
	Tasks     []Task `json:"visible_tasks"`
	Total     int    `json:"total"`
	Active    int    `json:"active"`
	Completed int    `json:"completed"`
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	View
	Filter       Filter `json:"current_filter"`
	PendingInput string `json:"pending_input"`
}
