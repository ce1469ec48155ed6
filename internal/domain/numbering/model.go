package numbering

import (
	"fmt"

	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// SequenceCounter is the unbounded legacy counter for a sequence name.
// It is owned exclusively by the sequence allocator and mutated only by
// the repository's atomic increment.
type SequenceCounter struct {
	// Sequence name; the unique key
	Name string `db:"name" json:"name"`
	// Last issued value; the next allocation returns Value+1
	Value int64 `db:"value" json:"value"`
}

// NumberingRange is the configured numbering window for one document
// type. CurrentNumber is the next value to be issued and is advanced by
// every successful ranged allocation.
type NumberingRange struct {
	// Unique identifier for the range configuration
	ID string `db:"id" json:"id"`
	// Document type this range numbers; the lookup key
	DocumentType types.DocumentType `db:"document_type" json:"document_type"`
	// Display prefix, e.g. "INV-"
	Prefix string `db:"prefix" json:"prefix"`
	// Inclusive bounds of the window
	StartNumber int64 `db:"start_number" json:"start_number"`
	EndNumber   int64 `db:"end_number" json:"end_number"`
	// Next value to be issued; always >= StartNumber
	CurrentNumber int64 `db:"current_number" json:"current_number"`
	// Whether operators may key in a number by hand for this type
	AllowManualEntry bool `db:"allow_manual_entry" json:"allow_manual_entry"`
	// Whether allocation falls back to the legacy counter once the
	// range is exhausted instead of failing
	AllowOutsideRange bool `db:"allow_outside_range" json:"allow_outside_range"`

	types.BaseModel
}

// FormatNumber renders an allocated value with the range prefix
func (r *NumberingRange) FormatNumber(n int64) string {
	return fmt.Sprintf("%s%d", r.Prefix, n)
}

// Exhausted reports whether the window has been fully consumed
func (r *NumberingRange) Exhausted() bool {
	return r.CurrentNumber > r.EndNumber
}

// Validate validates the numbering range
func (r *NumberingRange) Validate() error {
	if err := r.DocumentType.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Document type is invalid").
			Mark(ierr.ErrValidation)
	}
	if r.StartNumber <= 0 {
		return ierr.NewError("invalid start number").
			WithHint("Start number must be positive").
			Mark(ierr.ErrValidation)
	}
	if r.StartNumber > r.EndNumber {
		return ierr.NewError("invalid range bounds").
			WithHintf("Start number %d cannot exceed end number %d", r.StartNumber, r.EndNumber).
			Mark(ierr.ErrValidation)
	}
	if r.CurrentNumber < r.StartNumber {
		return ierr.NewError("invalid current number").
			WithHint("Current number cannot precede the range start").
			Mark(ierr.ErrValidation)
	}
	return nil
}
