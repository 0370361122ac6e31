package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/nibzard/todolist/internal/todo"
)

const (
	emptyNoTasks = "No tasks yet. Add a task to get started!"
	emptyNoMatch = "No tasks match the current filter."
)

// emptyMessage returns the placeholder for a view with no visible tasks,
// or "" when there is something to show.
func emptyMessage(v todo.View) string {
	if len(v.Tasks) > 0 {
		return ""
	}
	if v.Total == 0 {
		return emptyNoTasks
	}
	return emptyNoMatch
}

func clearLabel(completed int) string {
	return fmt.Sprintf("Clear Completed (%d)", completed)
}

func checkbox(t todo.Task) string {
	if t.Completed {
		return "[x]"
	}
	return "[ ]"
}

// RenderSnapshot writes a plain-text rendering of s to w.
func RenderSnapshot(w io.Writer, title string, s todo.Snapshot) error {
	var b strings.Builder
	if title != "" {
		b.WriteString(title + "\n")
		b.WriteString(strings.Repeat("=", len([]rune(title))) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("Total: %d  Active: %d  Completed: %d\n", s.Total, s.Active, s.Completed))
	b.WriteString(fmt.Sprintf("Filter: %s\n", s.Filter))
	if s.PendingInput != "" {
		b.WriteString(fmt.Sprintf("Input: %q\n", s.PendingInput))
	}
	b.WriteString("\n")

	if msg := emptyMessage(s.View); msg != "" {
		b.WriteString("  " + msg + "\n")
	}
	for _, t := range s.Tasks {
		b.WriteString(fmt.Sprintf("  %s %s  %s  (%s)\n", checkbox(t), t.ID, t.Text, t.Created))
	}

	if s.Completed > 0 {
		b.WriteString("\n" + clearLabel(s.Completed) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
