package events

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todolist/internal/todo"
)

// Replay applies every event in r to m in order and returns how many were
// applied. It stops at the first malformed event.
func Replay(r io.Reader, m *todo.Manager, logger *log.Logger) (int, error) {
	dec := NewDecoder(r)
	applied := 0
	for {
		e, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return applied, nil
		}
		if err != nil {
			return applied, err
		}

		Apply(m, e)
		applied++

		if logger != nil {
			s := m.Snapshot()
			logger.Debug("event applied",
				"line", dec.Line(),
				"event", e.String(),
				"total", s.Total,
				"active", s.Active,
				"completed", s.Completed,
			)
		}
	}
}
