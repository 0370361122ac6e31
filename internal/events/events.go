// Package events decodes and applies scripted UI events.
//
// A script is JSON Lines, one event per line:
//
//	{"type": "input", "text": "Buy milk"}
//	{"type": "key", "key": "Enter"}
//	{"type": "toggle", "id": "T1"}
//	{"type": "filter", "filter": "completed"}
//
// Blank lines and lines starting with # are skipped. Every event is checked
// against an embedded JSON Schema before it is decoded.
package events

import (
	"fmt"

	"github.com/nibzard/todolist/internal/todo"
)

// Type names an event.
type Type string

const (
	TypeInput          Type = "input"
	TypeKey            Type = "key"
	TypeAdd            Type = "add"
	TypeToggle         Type = "toggle"
	TypeDelete         Type = "delete"
	TypeClearCompleted Type = "clear_completed"
	TypeFilter         Type = "filter"
)

// Event is one user action as the rendering layer reports it.
type Event struct {
	Type   Type        `json:"type"`
	Text   string      `json:"text,omitempty"`
	Key    string      `json:"key,omitempty"`
	ID     string      `json:"id,omitempty"`
	Filter todo.Filter `json:"filter,omitempty"`
}

// Apply dispatches e to m. Unknown types are ignored; the decoder rejects
// them before they get here.
func Apply(m *todo.Manager, e Event) {
	switch e.Type {
	case TypeInput:
		m.SetPendingInput(e.Text)
	case TypeKey:
		m.SubmitOnEnter(e.Key)
	case TypeAdd:
		m.Add(m.PendingInput())
	case TypeToggle:
		m.Toggle(e.ID)
	case TypeDelete:
		m.Delete(e.ID)
	case TypeClearCompleted:
		m.ClearCompleted()
	case TypeFilter:
		m.SetFilter(e.Filter)
	}
}

// String renders e for log lines.
func (e Event) String() string {
	switch e.Type {
	case TypeInput:
		return fmt.Sprintf("input %q", e.Text)
	case TypeKey:
		return fmt.Sprintf("key %s", e.Key)
	case TypeToggle, TypeDelete:
		return fmt.Sprintf("%s %s", e.Type, e.ID)
	case TypeFilter:
		return fmt.Sprintf("filter %s", e.Filter)
	default:
		return string(e.Type)
	}
}
