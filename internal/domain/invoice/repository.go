package invoice

import (
	"context"

	"github.com/nandi-devi/tms-app/internal/types"
)

// Repository defines the interface for invoice persistence
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.InvoiceFilter) ([]*Invoice, error)
	Count(ctx context.Context, filter *types.InvoiceFilter) (int, error)

	// UpdateStatus persists a reconciled settlement status
	UpdateStatus(ctx context.Context, id string, status types.PaymentStatus) error

	// DeleteAll removes every invoice; used by restore and reset only
	DeleteAll(ctx context.Context) error
}
