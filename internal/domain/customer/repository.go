package customer

import (
	"context"

	"github.com/nandi-devi/tms-app/internal/types"
)

// Repository defines the interface for customer persistence
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Get(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.CustomerFilter) ([]*Customer, error)
	Count(ctx context.Context, filter *types.CustomerFilter) (int, error)

	// DeleteAll removes every customer; used by restore and reset only
	DeleteAll(ctx context.Context) error
}
