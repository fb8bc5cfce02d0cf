package analytics

import (
	"sync"
	"time"
)

// Summary is a point-in-time snapshot of the calculation tally.
type Summary struct {
	TotalResolved  int64            `json:"total_resolved"`
	ByOperation    map[string]int64 `json:"by_operation"`
	LastResolvedAt time.Time        `json:"last_resolved_at,omitempty"`
}

// TallyStore provides thread-safe counters for resolved calculations.
type TallyStore struct {
	mu             sync.RWMutex
	totalResolved  int64
	byOperation    map[string]int64
	lastResolvedAt time.Time
}

// NewTallyStore creates an empty tally store.
func NewTallyStore() *TallyStore {
	return &TallyStore{
		byOperation: make(map[string]int64),
	}
}

// RecordResolved counts one resolved calculation for the given operation.
func (s *TallyStore) RecordResolved(operation string, resolvedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalResolved++
	s.byOperation[operation]++
	if resolvedAt.After(s.lastResolvedAt) {
		s.lastResolvedAt = resolvedAt
	}
}

// Summary returns a snapshot of the current tally.
func (s *TallyStore) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byOp := make(map[string]int64, len(s.byOperation))
	for op, n := range s.byOperation {
		byOp[op] = n
	}

	return Summary{
		TotalResolved:  s.totalResolved,
		ByOperation:    byOp,
		LastResolvedAt: s.lastResolvedAt,
	}
}
