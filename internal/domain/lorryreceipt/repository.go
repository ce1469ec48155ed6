package lorryreceipt

import (
	"context"

	"github.com/nandi-devi/tms-app/internal/types"
)

// Repository defines the interface for lorry receipt persistence
type Repository interface {
	Create(ctx context.Context, lr *LorryReceipt) error
	Get(ctx context.Context, id string) (*LorryReceipt, error)
	GetByIDs(ctx context.Context, ids []string) ([]*LorryReceipt, error)
	Update(ctx context.Context, lr *LorryReceipt) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.LorryReceiptFilter) ([]*LorryReceipt, error)
	Count(ctx context.Context, filter *types.LorryReceiptFilter) (int, error)

	// UpdateStatus moves a single LR to the given status
	UpdateStatus(ctx context.Context, id string, status types.LorryReceiptStatus) error
	// UpdateStatusBulk moves a set of LRs to the given status; used by
	// the invoice lifecycle coordinator for attach/detach transitions
	UpdateStatusBulk(ctx context.Context, ids []string, status types.LorryReceiptStatus) error

	// DeleteAll removes every lorry receipt; used by restore and reset only
	DeleteAll(ctx context.Context) error
}
