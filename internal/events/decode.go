package events

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed event.schema.json
var eventSchemaJSON string

const eventSchemaURL = "event.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// eventSchema compiles the embedded schema once.
func eventSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(eventSchemaURL, strings.NewReader(eventSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load event schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(eventSchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile event schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// DecodeError reports a malformed event and the line it came from.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Line buffer sizes for the event scanner. A single event may carry a long
// input text, so lines up to MaxLineSize are accepted.
const (
	ScanBufferSize = 64 * 1024
	MaxLineSize    = 4 * 1024 * 1024
)

// Decoder reads events from a JSON Lines stream.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, ScanBufferSize), MaxLineSize)
	return &Decoder{scanner: scanner}
}

// Next returns the next event. It returns io.EOF when the stream ends.
func (d *Decoder) Next() (Event, error) {
	for d.scanner.Scan() {
		d.line++
		raw := bytes.TrimSpace(d.scanner.Bytes())
		if len(raw) == 0 || raw[0] == '#' {
			continue
		}
		e, err := ParseEvent(raw)
		if err != nil {
			return Event{}, &DecodeError{Line: d.line, Err: err}
		}
		return e, nil
	}
	if err := d.scanner.Err(); err != nil {
		// The failing line was never returned by Scan, so it is the next one.
		return Event{}, &DecodeError{Line: d.line + 1, Err: fmt.Errorf("read events: %w", err)}
	}
	return Event{}, io.EOF
}

// Line returns the number of the line most recently read.
func (d *Decoder) Line() int {
	return d.line
}

// ParseEvent validates one JSON document against the event schema and
// decodes it.
func ParseEvent(raw []byte) (Event, error) {
	s, err := eventSchema()
	if err != nil {
		return Event{}, err
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Event{}, fmt.Errorf("parse event: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return Event{}, schemaError(err)
	}

	var e Event
	if err := json.Unmarshal(raw, &e); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	return e, nil
}

// schemaError flattens a schema validation error into its leaf messages.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	var msgs []string
	collectLeaves(ve, &msgs)
	if len(msgs) == 0 {
		return fmt.Errorf("invalid event: %s", ve.Message)
	}
	return fmt.Errorf("invalid event: %s", strings.Join(msgs, "; "))
}

func collectLeaves(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, fmt.Sprintf("%s: %s", loc, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, msgs)
	}
}
