package testutil

import (
	"context"
	"strings"

	"github.com/nandi-devi/tms-app/internal/domain/vehicle"
	"github.com/nandi-devi/tms-app/internal/types"
)

// InMemoryVehicleStore implements vehicle.Repository
type InMemoryVehicleStore struct {
	*InMemoryStore[*vehicle.Vehicle]
}

// NewInMemoryVehicleStore creates a new in-memory vehicle store
func NewInMemoryVehicleStore() *InMemoryVehicleStore {
	return &InMemoryVehicleStore{
		InMemoryStore: NewInMemoryStore[*vehicle.Vehicle](),
	}
}

func copyVehicle(v *vehicle.Vehicle) *vehicle.Vehicle {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func (s *InMemoryVehicleStore) Create(ctx context.Context, v *vehicle.Vehicle) error {
	return s.InMemoryStore.Create(ctx, v.ID, copyVehicle(v))
}

func (s *InMemoryVehicleStore) Get(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	v, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyVehicle(v), nil
}

func (s *InMemoryVehicleStore) Update(ctx context.Context, v *vehicle.Vehicle) error {
	return s.InMemoryStore.Update(ctx, v.ID, copyVehicle(v))
}

func (s *InMemoryVehicleStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func vehicleFilterFn(ctx context.Context, v *vehicle.Vehicle, filter interface{}) bool {
	f, ok := filter.(*types.VehicleFilter)
	if !ok || f == nil {
		return true
	}
	if f.RegistrationNumber != nil &&
		!strings.Contains(strings.ToLower(v.RegistrationNumber), strings.ToLower(*f.RegistrationNumber)) {
		return false
	}
	return true
}

func (s *InMemoryVehicleStore) List(ctx context.Context, filter *types.VehicleFilter) ([]*vehicle.Vehicle, error) {
	items, err := s.InMemoryStore.List(ctx, filter, vehicleFilterFn, func(i, j *vehicle.Vehicle) bool {
		return i.RegistrationNumber < j.RegistrationNumber
	})
	if err != nil {
		return nil, err
	}
	out := make([]*vehicle.Vehicle, 0, len(items))
	for _, v := range paginate(items, filter.GetLimit(), filter.GetOffset()) {
		out = append(out, copyVehicle(v))
	}
	return out, nil
}

func (s *InMemoryVehicleStore) Count(ctx context.Context, filter *types.VehicleFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, vehicleFilterFn)
}

func (s *InMemoryVehicleStore) DeleteAll(ctx context.Context) error {
	s.Clear()
	return nil
}
