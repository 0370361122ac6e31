package todo

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ID schemes accepted by NewIDGenerator.
const (
	IDSchemeSequence = "sequence"
	IDSchemeUUID     = "uuid"
)

// IDGenerator hands out task identifiers.
type IDGenerator interface {
	NextID() string
}

// SequenceIDs yields T1, T2, ... Each value is strictly greater than the last,
// so rapid successive adds can never collide.
type SequenceIDs struct {
	Prefix string
	last   uint64
}

// NextID returns the next identifier in the sequence.
func (s *SequenceIDs) NextID() string {
	s.last++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "T"
	}
	return prefix + strconv.FormatUint(s.last, 10)
}

// UUIDs yields time-ordered UUIDv7 strings.
type UUIDs struct{}

// NextID returns a new UUIDv7. It falls back to a random v4 UUID if the
// v7 source fails.
func (UUIDs) NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// NewIDGenerator returns the generator for scheme.
func NewIDGenerator(scheme string) (IDGenerator, error) {
	switch scheme {
	case "", IDSchemeSequence:
		return &SequenceIDs{}, nil
	case IDSchemeUUID:
		return UUIDs{}, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q, must be one of: sequence, uuid", scheme)
	}
}
