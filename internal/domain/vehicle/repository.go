package vehicle

import (
	"context"

	"github.com/nandi-devi/tms-app/internal/types"
)

// Repository defines the interface for vehicle persistence
type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	Get(ctx context.Context, id string) (*Vehicle, error)
	Update(ctx context.Context, v *Vehicle) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.VehicleFilter) ([]*Vehicle, error)
	Count(ctx context.Context, filter *types.VehicleFilter) (int, error)

	// DeleteAll removes every vehicle; used by restore and reset only
	DeleteAll(ctx context.Context) error
}
