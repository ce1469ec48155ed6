package truckhiringnote

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nandi-devi/tms-app/internal/types"
)

// Repository defines the interface for truck hiring note persistence
type Repository interface {
	Create(ctx context.Context, thn *TruckHiringNote) error
	Get(ctx context.Context, id string) (*TruckHiringNote, error)
	Update(ctx context.Context, thn *TruckHiringNote) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.TruckHiringNoteFilter) ([]*TruckHiringNote, error)
	Count(ctx context.Context, filter *types.TruckHiringNoteFilter) (int, error)

	// UpdateFinancials persists the reconciled paid amount, balance and
	// status in a single write
	UpdateFinancials(ctx context.Context, id string, paid, balance decimal.Decimal, status types.PaymentStatus) error

	// DeleteAll removes every truck hiring note; used by restore and reset only
	DeleteAll(ctx context.Context) error
}
