package events

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/nibzard/todolist/internal/logging"
	"github.com/nibzard/todolist/internal/todo"
)

func newManager() *todo.Manager {
	at := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	return todo.New(todo.WithClock(func() time.Time { return at }))
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Event
		wantErr string
	}{
		{
			name: "input",
			raw:  `{"type":"input","text":"  Buy milk "}`,
			want: Event{Type: TypeInput, Text: "  Buy milk "},
		},
		{
			name: "empty input is allowed",
			raw:  `{"type":"input","text":""}`,
			want: Event{Type: TypeInput},
		},
		{
			name: "key",
			raw:  `{"type":"key","key":"Enter"}`,
			want: Event{Type: TypeKey, Key: "Enter"},
		},
		{
			name: "add",
			raw:  `{"type":"add"}`,
			want: Event{Type: TypeAdd},
		},
		{
			name: "toggle",
			raw:  `{"type":"toggle","id":"T3"}`,
			want: Event{Type: TypeToggle, ID: "T3"},
		},
		{
			name: "delete",
			raw:  `{"type":"delete","id":"T1"}`,
			want: Event{Type: TypeDelete, ID: "T1"},
		},
		{
			name: "clear completed",
			raw:  `{"type":"clear_completed"}`,
			want: Event{Type: TypeClearCompleted},
		},
		{
			name: "filter",
			raw:  `{"type":"filter","filter":"active"}`,
			want: Event{Type: TypeFilter, Filter: todo.FilterActive},
		},
		{name: "not json", raw: `{"type":`, wantErr: "parse event"},
		{name: "unknown type", raw: `{"type":"rename","id":"T1"}`, wantErr: "invalid event"},
		{name: "missing type", raw: `{"id":"T1"}`, wantErr: "invalid event"},
		{name: "toggle without id", raw: `{"type":"toggle"}`, wantErr: "invalid event"},
		{name: "bad filter", raw: `{"type":"filter","filter":"done"}`, wantErr: "invalid event"},
		{name: "extra field", raw: `{"type":"add","text":"x"}`, wantErr: "invalid event"},
		{name: "empty key", raw: `{"type":"key","key":""}`, wantErr: "invalid event"},
		{name: "array", raw: `[]`, wantErr: "invalid event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEvent([]byte(tt.raw))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got event %+v", tt.wantErr, got)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error: got %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEvent: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecoderSkipsBlankAndComments(t *testing.T) {
	script := `
# add a task
{"type":"input","text":"a"}

{"type":"key","key":"Enter"}
`
	dec := NewDecoder(strings.NewReader(script))

	first, err := dec.Next()
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if first.Type != TypeInput || dec.Line() != 3 {
		t.Errorf("first: got %+v at line %d", first, dec.Line())
	}

	second, err := dec.Next()
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.Type != TypeKey || dec.Line() != 5 {
		t.Errorf("second: got %+v at line %d", second, dec.Line())
	}

	if _, err := dec.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestDecoderReportsLine(t *testing.T) {
	script := "{\"type\":\"add\"}\n{\"type\":\"toggle\"}\n"
	dec := NewDecoder(strings.NewReader(script))

	if _, err := dec.Next(); err != nil {
		t.Fatalf("first: %v", err)
	}
	_, err := dec.Next()
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %T %v", err, err)
	}
	if de.Line != 2 {
		t.Errorf("Line: got %d, want 2", de.Line)
	}
	if !strings.HasPrefix(err.Error(), "line 2: ") {
		t.Errorf("Error(): got %q", err.Error())
	}
}

func TestApply(t *testing.T) {
	m := newManager()

	Apply(m, Event{Type: TypeInput, Text: "Buy milk"})
	if m.PendingInput() != "Buy milk" {
		t.Fatalf("PendingInput: got %q", m.PendingInput())
	}

	Apply(m, Event{Type: TypeKey, Key: "Tab"})
	if m.Snapshot().Total != 0 {
		t.Fatal("non-enter key should not add")
	}

	Apply(m, Event{Type: TypeKey, Key: todo.KeyEnter})
	if s := m.Snapshot(); s.Total != 1 || s.PendingInput != "" {
		t.Fatalf("after enter: %+v", s)
	}

	Apply(m, Event{Type: TypeInput, Text: "Walk dog"})
	Apply(m, Event{Type: TypeAdd})
	Apply(m, Event{Type: TypeToggle, ID: "T1"})
	Apply(m, Event{Type: TypeFilter, Filter: todo.FilterCompleted})

	s := m.Snapshot()
	if s.Total != 2 || s.Completed != 1 || s.Filter != todo.FilterCompleted {
		t.Fatalf("snapshot: %+v", s)
	}
	if len(s.Tasks) != 1 || s.Tasks[0].Text != "Buy milk" {
		t.Errorf("visible: %+v", s.Tasks)
	}

	Apply(m, Event{Type: TypeClearCompleted})
	Apply(m, Event{Type: TypeDelete, ID: "T9"})
	if s := m.Snapshot(); s.Total != 1 || s.Completed != 0 {
		t.Errorf("after clear: %+v", s.View)
	}

	Apply(m, Event{Type: TypeDelete, ID: "T2"})
	if s := m.Snapshot(); s.Total != 0 {
		t.Errorf("after delete: %+v", s.View)
	}
}

func TestReplayScenarios(t *testing.T) {
	script := `{"type":"input","text":"first"}
{"type":"key","key":"Enter"}
{"type":"input","text":"second"}
{"type":"add"}
{"type":"input","text":"   "}
{"type":"key","key":"Enter"}
{"type":"toggle","id":"T1"}
{"type":"clear_completed"}
{"type":"delete","id":"never-issued"}
`
	m := newManager()
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Options{Level: "debug"})

	n, err := Replay(strings.NewReader(script), m, logger)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if n != 9 {
		t.Errorf("applied: got %d, want 9", n)
	}

	s := m.Snapshot()
	if s.Total != 1 || s.Active != 1 || s.Completed != 0 {
		t.Errorf("counts: %+v", s.View)
	}
	if s.Tasks[0].Text != "second" {
		t.Errorf("survivor: got %q, want second", s.Tasks[0].Text)
	}
	if s.PendingInput != "   " {
		t.Errorf("blank input should stay pending, got %q", s.PendingInput)
	}
	if strings.Count(buf.String(), "event applied") != 9 {
		t.Errorf("expected 9 debug lines, got:\n%s", buf.String())
	}
}

func TestReplayStopsAtMalformedEvent(t *testing.T) {
	script := `{"type":"input","text":"a"}
{"type":"add"}
{"type":"filter","filter":"someday"}
{"type":"input","text":"b"}
`
	m := newManager()
	n, err := Replay(strings.NewReader(script), m, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Line != 3 {
		t.Errorf("expected DecodeError on line 3, got %v", err)
	}
	if n != 2 {
		t.Errorf("applied: got %d, want 2", n)
	}
	if m.Snapshot().Total != 1 {
		t.Errorf("events before the error should stay applied")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		e    Event
		want string
	}{
		{Event{Type: TypeInput, Text: "a b"}, `input "a b"`},
		{Event{Type: TypeKey, Key: "Enter"}, "key Enter"},
		{Event{Type: TypeToggle, ID: "T1"}, "toggle T1"},
		{Event{Type: TypeDelete, ID: "T2"}, "delete T2"},
		{Event{Type: TypeFilter, Filter: todo.FilterAll}, "filter all"},
		{Event{Type: TypeClearCompleted}, "clear_completed"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String(): got %q, want %q", got, tt.want)
		}
	}
}

func TestReplayLongInputLine(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	script := `{"type":"input","text":"` + long + `"}` + "\n" + `{"type":"key","key":"Enter"}` + "\n"

	m := newManager()
	n, err := Replay(strings.NewReader(script), m, nil)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if n != 2 {
		t.Errorf("applied: got %d, want 2", n)
	}
	s := m.Snapshot()
	if s.Total != 1 || len(s.Tasks[0].Text) != len(long) {
		t.Errorf("expected one task with %d bytes of text, got total=%d", len(long), s.Total)
	}
}

func TestDecoderLineTooLong(t *testing.T) {
	script := `{"type":"add"}` + "\n" +
		`{"type":"input","text":"` + strings.Repeat("x", MaxLineSize) + `"}` + "\n"
	dec := NewDecoder(strings.NewReader(script))

	if _, err := dec.Next(); err != nil {
		t.Fatalf("first: %v", err)
	}
	_, err := dec.Next()
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DecodeError, got %T %v", err, err)
	}
	if de.Line != 2 {
		t.Errorf("Line: got %d, want 2", de.Line)
	}
	if !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("expected bufio.ErrTooLong, got %v", err)
	}
}
