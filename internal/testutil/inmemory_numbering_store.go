package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/nandi-devi/tms-app/internal/domain/numbering"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// InMemoryNumberingStore implements numbering.Repository with the same
// atomicity guarantees as the postgres implementation: AllocateNext and
// Increment are single critical sections, so concurrent callers can
// never be issued the same value.
type InMemoryNumberingStore struct {
	mu       sync.Mutex
	ranges   map[types.DocumentType]*numbering.NumberingRange
	counters map[string]int64
}

// NewInMemoryNumberingStore creates a new in-memory numbering store
func NewInMemoryNumberingStore() *InMemoryNumberingStore {
	return &InMemoryNumberingStore{
		ranges:   make(map[types.DocumentType]*numbering.NumberingRange),
		counters: make(map[string]int64),
	}
}

func copyRange(r *numbering.NumberingRange) *numbering.NumberingRange {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}

func (s *InMemoryNumberingStore) GetRange(ctx context.Context, documentType types.DocumentType) (*numbering.NumberingRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.ranges[documentType]
	if !ok {
		return nil, ierr.NewError("numbering range not found").
			WithHintf("No numbering range configured for %s", documentType).
			Mark(ierr.ErrNotFound)
	}
	return copyRange(r), nil
}

func (s *InMemoryNumberingStore) UpsertRange(ctx context.Context, r *numbering.NumberingRange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ranges[r.DocumentType] = copyRange(r)
	return nil
}

func (s *InMemoryNumberingStore) ListRanges(ctx context.Context) ([]*numbering.NumberingRange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*numbering.NumberingRange, 0, len(s.ranges))
	for _, r := range s.ranges {
		out = append(out, copyRange(r))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DocumentType < out[j].DocumentType
	})
	return out, nil
}

func (s *InMemoryNumberingStore) AllocateNext(ctx context.Context, documentType types.DocumentType) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.ranges[documentType]
	if !ok {
		return 0, ierr.NewError("numbering range not found").
			WithHintf("No numbering range configured for %s", documentType).
			Mark(ierr.ErrNotFound)
	}
	if r.CurrentNumber > r.EndNumber {
		return 0, ierr.NewError("sequence range exhausted").
			WithHintf("%s range exhausted; update Settings", documentType).
			Mark(ierr.ErrSequenceExhausted)
	}

	n := r.CurrentNumber
	r.CurrentNumber++
	return n, nil
}

func (s *InMemoryNumberingStore) DeleteAllRanges(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ranges = make(map[types.DocumentType]*numbering.NumberingRange)
	return nil
}

func (s *InMemoryNumberingStore) Increment(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[name]++
	return s.counters[name], nil
}

func (s *InMemoryNumberingStore) GetCounter(ctx context.Context, name string) (*numbering.SequenceCounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.counters[name]
	if !ok {
		return nil, ierr.NewError("sequence counter not found").
			WithHintf("Counter %s has never been incremented", name).
			Mark(ierr.ErrNotFound)
	}
	return &numbering.SequenceCounter{Name: name, Value: v}, nil
}

func (s *InMemoryNumberingStore) ListCounters(ctx context.Context) ([]*numbering.SequenceCounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*numbering.SequenceCounter, 0, len(s.counters))
	for name, v := range s.counters {
		out = append(out, &numbering.SequenceCounter{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *InMemoryNumberingStore) SetCounter(ctx context.Context, name string, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[name] = value
	return nil
}

func (s *InMemoryNumberingStore) DeleteAllCounters(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters = make(map[string]int64)
	return nil
}

// Clear wipes all ranges and counters
func (s *InMemoryNumberingStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ranges = make(map[types.DocumentType]*numbering.NumberingRange)
	s.counters = make(map[string]int64)
}
