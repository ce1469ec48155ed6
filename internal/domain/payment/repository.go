package payment

import (
	"context"

	"github.com/nandi-devi/tms-app/internal/types"
)

// Repository defines the interface for payment persistence
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	Update(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.PaymentFilter) ([]*Payment, error)
	Count(ctx context.Context, filter *types.PaymentFilter) (int, error)

	// ListByTarget returns every payment recorded against the given
	// target. The reconciler always recomputes from this full set.
	ListByTarget(ctx context.Context, targetType types.PaymentTargetType, targetID string) ([]*Payment, error)

	// DeleteAll removes every payment; used by restore and reset only
	DeleteAll(ctx context.Context) error
}
