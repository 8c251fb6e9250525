package tui

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource yields unique ids for block instances and their rendered
// elements. It is injected at construction so tests and hosts control
// uniqueness instead of relying on hidden package state.
type IDSource interface {
	NextID() string
}

// CounterIDSource issues sequential ids with a fixed prefix. Safe for
// concurrent use.
type CounterIDSource struct {
	prefix string
	next   atomic.Uint64
}

// NewCounterIDSource creates a counter source. An empty prefix falls
// back to "gifblock".
func NewCounterIDSource(prefix string) *CounterIDSource {
	if prefix == "" {
		prefix = "gifblock"
	}
	return &CounterIDSource{prefix: prefix}
}

// NextID implements IDSource.
func (s *CounterIDSource) NextID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.next.Add(1))
}

// UUIDSource issues random uuids. Useful when block ids must be
// unique across processes, e.g. in persisted documents.
type UUIDSource struct{}

// NextID implements IDSource.
func (UUIDSource) NextID() string {
	return uuid.NewString()
}

// defaultIDs is the process-wide fallback source used when a host
// passes no IDSource of its own.
var defaultIDs = NewCounterIDSource("gifblock")
