package numbering

import (
	"context"

	"github.com/nandi-devi/tms-app/internal/types"
)

// RangeRepository defines the interface for numbering range persistence.
//
// AllocateNext is the only way a range's current number advances during
// normal operation: it must be a single atomic read-modify-write so two
// concurrent callers can never be issued the same value.
type RangeRepository interface {
	// GetRange returns the active range for the document type, or
	// ErrNotFound when none is configured
	GetRange(ctx context.Context, documentType types.DocumentType) (*NumberingRange, error)
	// UpsertRange replaces the range configuration for its document type
	UpsertRange(ctx context.Context, r *NumberingRange) error
	ListRanges(ctx context.Context) ([]*NumberingRange, error)

	// AllocateNext atomically issues the next number from the range.
	// Returns ErrNotFound when no range is configured and
	// ErrSequenceExhausted when the window is consumed; in both cases
	// the range row is left untouched.
	AllocateNext(ctx context.Context, documentType types.DocumentType) (int64, error)

	// DeleteAllRanges removes every range; used by restore and reset only
	DeleteAllRanges(ctx context.Context) error
}

// CounterRepository defines the interface for the legacy counter store.
//
// Increment must be a single atomic upsert-and-increment round trip
// because the counter is accumulated, not re-derived.
type CounterRepository interface {
	// Increment creates the counter at zero if absent, adds one, and
	// returns the new value
	Increment(ctx context.Context, name string) (int64, error)
	// GetCounter returns the counter, or ErrNotFound when it has never
	// been incremented
	GetCounter(ctx context.Context, name string) (*SequenceCounter, error)
	ListCounters(ctx context.Context) ([]*SequenceCounter, error)
	// SetCounter force-writes a counter value; used by restore only
	SetCounter(ctx context.Context, name string, value int64) error

	// DeleteAllCounters removes every counter; used by restore and reset only
	DeleteAllCounters(ctx context.Context) error
}

// Repository combines range and counter persistence; the postgres
// implementation backs both with the same client
type Repository interface {
	RangeRepository
	CounterRepository
}
