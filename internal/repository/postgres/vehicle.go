package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nandi-devi/tms-app/internal/cache"
	domainVehicle "github.com/nandi-devi/tms-app/internal/domain/vehicle"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/postgres"
	"github.com/nandi-devi/tms-app/internal/types"
)

type vehicleRepository struct {
	client postgres.IClient
	log    *logger.Logger
	cache  cache.Cache
}

func NewVehicleRepository(client postgres.IClient, log *logger.Logger, cache cache.Cache) domainVehicle.Repository {
	return &vehicleRepository{
		client: client,
		log:    log,
		cache:  cache,
	}
}

const vehicleColumns = `id, registration_number, vehicle_type, capacity_tonnes,
	created_at, updated_at, created_by, updated_by`

func (r *vehicleRepository) Create(ctx context.Context, v *domainVehicle.Vehicle) error {
	client := r.client.Querier(ctx)

	query := `INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES (:id, :registration_number, :vehicle_type, :capacity_tonnes,
			:created_at, :updated_at, :created_by, :updated_by)`

	if _, err := sqlx.NamedExecContext(ctx, client, query, v); err != nil {
		if isUniqueViolation(err, "vehicles_registration_number_key") {
			return ierr.WithError(err).
				WithHintf("Vehicle %s is already registered", v.RegistrationNumber).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create vehicle").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *vehicleRepository) Get(ctx context.Context, id string) (*domainVehicle.Vehicle, error) {
	key := cache.GenerateKey(cache.PrefixVehicle, id)
	if cached, found := r.cache.Get(ctx, key); found {
		if v, ok := cached.(*domainVehicle.Vehicle); ok {
			return v, nil
		}
	}

	client := r.client.Querier(ctx)

	var v domainVehicle.Vehicle
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	if err := client.GetContext(ctx, &v, query, id); err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("vehicle not found").
				WithHintf("Vehicle %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get vehicle").
			Mark(ierr.ErrDatabase)
	}

	r.cache.Set(ctx, key, &v, cache.DefaultExpiration)
	return &v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domainVehicle.Vehicle) error {
	client := r.client.Querier(ctx)

	v.UpdatedAt = time.Now().UTC()

	query := `UPDATE vehicles SET
		registration_number = :registration_number,
		vehicle_type = :vehicle_type,
		capacity_tonnes = :capacity_tonnes,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id`

	res, err := sqlx.NamedExecContext(ctx, client, query, v)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update vehicle").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("vehicle not found").
			WithHintf("Vehicle %s does not exist", v.ID).
			Mark(ierr.ErrNotFound)
	}

	r.cache.Delete(ctx, cache.GenerateKey(cache.PrefixVehicle, v.ID))
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	res, err := client.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete vehicle").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("vehicle not found").
			WithHintf("Vehicle %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}

	r.cache.Delete(ctx, cache.GenerateKey(cache.PrefixVehicle, id))
	return nil
}

func (r *vehicleRepository) List(ctx context.Context, filter *types.VehicleFilter) ([]*domainVehicle.Vehicle, error) {
	client := r.client.Querier(ctx)

	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyVehicleFilter(query, args, filter)
	query += ` ORDER BY registration_number ASC`
	query, args = applyPagination(query, args, filter.GetLimit(), filter.GetOffset())

	vehicles := make([]*domainVehicle.Vehicle, 0)
	if err := client.SelectContext(ctx, &vehicles, client.Rebind(query), args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list vehicles").
			Mark(ierr.ErrDatabase)
	}
	return vehicles, nil
}

func (r *vehicleRepository) Count(ctx context.Context, filter *types.VehicleFilter) (int, error) {
	client := r.client.Querier(ctx)

	query := `SELECT COUNT(*) FROM vehicles WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyVehicleFilter(query, args, filter)

	var count int
	if err := client.GetContext(ctx, &count, client.Rebind(query), args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count vehicles").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *vehicleRepository) DeleteAll(ctx context.Context) error {
	client := r.client.Querier(ctx)
	if _, err := client.ExecContext(ctx, `DELETE FROM vehicles`); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete vehicles").
			Mark(ierr.ErrDatabase)
	}
	r.cache.DeleteByPrefix(ctx, cache.PrefixVehicle)
	return nil
}

func applyVehicleFilter(query string, args []interface{}, filter *types.VehicleFilter) (string, []interface{}) {
	if filter == nil {
		return query, args
	}
	if filter.RegistrationNumber != nil {
		query += ` AND registration_number ILIKE ?`
		args = append(args, "%"+*filter.RegistrationNumber+"%")
	}
	return query, args
}
