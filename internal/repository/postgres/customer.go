package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nandi-devi/tms-app/internal/cache"
	domainCustomer "github.com/nandi-devi/tms-app/internal/domain/customer"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/postgres"
	"github.com/nandi-devi/tms-app/internal/types"
)

type customerRepository struct {
	client postgres.IClient
	log    *logger.Logger
	cache  cache.Cache
}

func NewCustomerRepository(client postgres.IClient, log *logger.Logger, cache cache.Cache) domainCustomer.Repository {
	return &customerRepository{
		client: client,
		log:    log,
		cache:  cache,
	}
}

const customerColumns = `id, name, address, city, state, gstin, phone, email,
	created_at, updated_at, created_by, updated_by`

func (r *customerRepository) Create(ctx context.Context, c *domainCustomer.Customer) error {
	client := r.client.Querier(ctx)

	query := `INSERT INTO customers (` + customerColumns + `)
		VALUES (:id, :name, :address, :city, :state, :gstin, :phone, :email,
			:created_at, :updated_at, :created_by, :updated_by)`

	if _, err := sqlx.NamedExecContext(ctx, client, query, c); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create customer").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *customerRepository) Get(ctx context.Context, id string) (*domainCustomer.Customer, error) {
	key := cache.GenerateKey(cache.PrefixCustomer, id)
	if cached, found := r.cache.Get(ctx, key); found {
		if c, ok := cached.(*domainCustomer.Customer); ok {
			return c, nil
		}
	}

	client := r.client.Querier(ctx)

	var c domainCustomer.Customer
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	if err := client.GetContext(ctx, &c, query, id); err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("customer not found").
				WithHintf("Customer %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get customer").
			Mark(ierr.ErrDatabase)
	}

	r.cache.Set(ctx, key, &c, cache.DefaultExpiration)
	return &c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domainCustomer.Customer) error {
	client := r.client.Querier(ctx)

	c.UpdatedAt = time.Now().UTC()

	query := `UPDATE customers SET
		name = :name,
		address = :address,
		city = :city,
		state = :state,
		gstin = :gstin,
		phone = :phone,
		email = :email,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id`

	res, err := sqlx.NamedExecContext(ctx, client, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update customer").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("customer not found").
			WithHintf("Customer %s does not exist", c.ID).
			Mark(ierr.ErrNotFound)
	}

	r.cache.Delete(ctx, cache.GenerateKey(cache.PrefixCustomer, c.ID))
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	res, err := client.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete customer").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("customer not found").
			WithHintf("Customer %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}

	r.cache.Delete(ctx, cache.GenerateKey(cache.PrefixCustomer, id))
	return nil
}

func (r *customerRepository) List(ctx context.Context, filter *types.CustomerFilter) ([]*domainCustomer.Customer, error) {
	client := r.client.Querier(ctx)

	query := `SELECT ` + customerColumns + ` FROM customers WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyCustomerFilter(query, args, filter)
	query += ` ORDER BY name ASC`
	query, args = applyPagination(query, args, filter.GetLimit(), filter.GetOffset())

	customers := make([]*domainCustomer.Customer, 0)
	if err := client.SelectContext(ctx, &customers, client.Rebind(query), args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list customers").
			Mark(ierr.ErrDatabase)
	}
	return customers, nil
}

func (r *customerRepository) Count(ctx context.Context, filter *types.CustomerFilter) (int, error) {
	client := r.client.Querier(ctx)

	query := `SELECT COUNT(*) FROM customers WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyCustomerFilter(query, args, filter)

	var count int
	if err := client.GetContext(ctx, &count, client.Rebind(query), args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count customers").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *customerRepository) DeleteAll(ctx context.Context) error {
	client := r.client.Querier(ctx)
	if _, err := client.ExecContext(ctx, `DELETE FROM customers`); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete customers").
			Mark(ierr.ErrDatabase)
	}
	r.cache.DeleteByPrefix(ctx, cache.PrefixCustomer)
	return nil
}

func applyCustomerFilter(query string, args []interface{}, filter *types.CustomerFilter) (string, []interface{}) {
	if filter == nil {
		return query, args
	}
	if filter.Name != nil {
		query += ` AND name ILIKE ?`
		args = append(args, "%"+*filter.Name+"%")
	}
	return query, args
}
