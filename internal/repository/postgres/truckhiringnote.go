package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	domainTHN "github.com/nandi-devi/tms-app/internal/domain/truckhiringnote"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/postgres"
	"github.com/nandi-devi/tms-app/internal/types"
)

type truckHiringNoteRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewTruckHiringNoteRepository(client postgres.IClient, log *logger.Logger) domainTHN.Repository {
	return &truckHiringNoteRepository{
		client: client,
		log:    log,
	}
}

const thnColumns = `id, thn_number, thn_date, truck_owner, truck_number, origin, destination,
	freight_amount, advance_amount, paid_amount, balance_amount, status,
	created_at, updated_at, created_by, updated_by`

func (r *truckHiringNoteRepository) Create(ctx context.Context, thn *domainTHN.TruckHiringNote) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating truck hiring note",
		"thn_id", thn.ID,
		"thn_number", thn.Number,
		"freight_amount", thn.FreightAmount)

	query := `INSERT INTO truck_hiring_notes (` + thnColumns + `)
		VALUES (:id, :thn_number, :thn_date, :truck_owner, :truck_number, :origin, :destination,
			:freight_amount, :advance_amount, :paid_amount, :balance_amount, :status,
			:created_at, :updated_at, :created_by, :updated_by)`

	if _, err := sqlx.NamedExecContext(ctx, client, query, thn); err != nil {
		if isUniqueViolation(err, "truck_hiring_notes_thn_number_key") {
			return ierr.WithError(err).
				WithHintf("THN number %d is already in use", thn.Number).
				Mark(ierr.ErrDuplicateNumber)
		}
		return ierr.WithError(err).
			WithHint("Failed to create truck hiring note").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *truckHiringNoteRepository) Get(ctx context.Context, id string) (*domainTHN.TruckHiringNote, error) {
	client := r.client.Querier(ctx)

	var thn domainTHN.TruckHiringNote
	query := `SELECT ` + thnColumns + ` FROM truck_hiring_notes WHERE id = $1`
	if err := client.GetContext(ctx, &thn, query, id); err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("truck hiring note not found").
				WithHintf("Truck hiring note %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get truck hiring note").
			Mark(ierr.ErrDatabase)
	}
	return &thn, nil
}

func (r *truckHiringNoteRepository) Update(ctx context.Context, thn *domainTHN.TruckHiringNote) error {
	client := r.client.Querier(ctx)

	thn.UpdatedAt = time.Now().UTC()

	query := `UPDATE truck_hiring_notes SET
		thn_date = :thn_date,
		truck_owner = :truck_owner,
		truck_number = :truck_number,
		origin = :origin,
		destination = :destination,
		freight_amount = :freight_amount,
		advance_amount = :advance_amount,
		paid_amount = :paid_amount,
		balance_amount = :balance_amount,
		status = :status,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id`

	res, err := sqlx.NamedExecContext(ctx, client, query, thn)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update truck hiring note").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("truck hiring note not found").
			WithHintf("Truck hiring note %s does not exist", thn.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *truckHiringNoteRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	res, err := client.ExecContext(ctx, `DELETE FROM truck_hiring_notes WHERE id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete truck hiring note").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("truck hiring note not found").
			WithHintf("Truck hiring note %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *truckHiringNoteRepository) List(ctx context.Context, filter *types.TruckHiringNoteFilter) ([]*domainTHN.TruckHiringNote, error) {
	client := r.client.Querier(ctx)

	query := `SELECT ` + thnColumns + ` FROM truck_hiring_notes WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyTHNFilter(query, args, filter)
	query += ` ORDER BY thn_number DESC`
	query, args = applyPagination(query, args, filter.GetLimit(), filter.GetOffset())

	notes := make([]*domainTHN.TruckHiringNote, 0)
	if err := client.SelectContext(ctx, &notes, client.Rebind(query), args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list truck hiring notes").
			Mark(ierr.ErrDatabase)
	}
	return notes, nil
}

func (r *truckHiringNoteRepository) Count(ctx context.Context, filter *types.TruckHiringNoteFilter) (int, error) {
	client := r.client.Querier(ctx)

	query := `SELECT COUNT(*) FROM truck_hiring_notes WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyTHNFilter(query, args, filter)

	var count int
	if err := client.GetContext(ctx, &count, client.Rebind(query), args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count truck hiring notes").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *truckHiringNoteRepository) UpdateFinancials(ctx context.Context, id string, paid, balance decimal.Decimal, status types.PaymentStatus) error {
	client := r.client.Querier(ctx)

	query := `UPDATE truck_hiring_notes
		SET paid_amount = $1, balance_amount = $2, status = $3,
			updated_at = CURRENT_TIMESTAMP, updated_by = $4
		WHERE id = $5`
	res, err := client.ExecContext(ctx, query, paid, balance, status, types.GetUserID(ctx), id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update truck hiring note financials").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("truck hiring note not found").
			WithHintf("Truck hiring note %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *truckHiringNoteRepository) DeleteAll(ctx context.Context) error {
	client := r.client.Querier(ctx)
	if _, err := client.ExecContext(ctx, `DELETE FROM truck_hiring_notes`); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete truck hiring notes").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func applyTHNFilter(query string, args []interface{}, filter *types.TruckHiringNoteFilter) (string, []interface{}) {
	if filter == nil {
		return query, args
	}
	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, *filter.Status)
	}
	return query, args
}
