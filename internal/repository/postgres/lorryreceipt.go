package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	domainLR "github.com/nandi-devi/tms-app/internal/domain/lorryreceipt"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/postgres"
	"github.com/nandi-devi/tms-app/internal/types"
)

type lorryReceiptRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewLorryReceiptRepository(client postgres.IClient, log *logger.Logger) domainLR.Repository {
	return &lorryReceiptRepository{
		client: client,
		log:    log,
	}
}

const lorryReceiptColumns = `id, lr_number, lr_date, consignor_id, consignee_id, vehicle_id,
	origin, destination, packages, description, actual_weight, charged_weight,
	freight_charge, hamali_charge, other_charges, freight_type, status,
	created_at, updated_at, created_by, updated_by`

func (r *lorryReceiptRepository) Create(ctx context.Context, lr *domainLR.LorryReceipt) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating lorry receipt",
		"lr_id", lr.ID,
		"lr_number", lr.Number,
		"status", lr.Status)

	query := `INSERT INTO lorry_receipts (` + lorryReceiptColumns + `)
		VALUES (:id, :lr_number, :lr_date, :consignor_id, :consignee_id, :vehicle_id,
			:origin, :destination, :packages, :description, :actual_weight, :charged_weight,
			:freight_charge, :hamali_charge, :other_charges, :freight_type, :status,
			:created_at, :updated_at, :created_by, :updated_by)`

	if _, err := sqlx.NamedExecContext(ctx, client, query, lr); err != nil {
		if isUniqueViolation(err, "lorry_receipts_lr_number_key") {
			return ierr.WithError(err).
				WithHintf("LR number %d is already in use", lr.Number).
				Mark(ierr.ErrDuplicateNumber)
		}
		return ierr.WithError(err).
			WithHint("Failed to create lorry receipt").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *lorryReceiptRepository) Get(ctx context.Context, id string) (*domainLR.LorryReceipt, error) {
	client := r.client.Querier(ctx)

	var lr domainLR.LorryReceipt
	query := `SELECT ` + lorryReceiptColumns + ` FROM lorry_receipts WHERE id = $1`
	if err := client.GetContext(ctx, &lr, query, id); err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("lorry receipt not found").
				WithHintf("Lorry receipt %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get lorry receipt").
			Mark(ierr.ErrDatabase)
	}
	return &lr, nil
}

func (r *lorryReceiptRepository) GetByIDs(ctx context.Context, ids []string) ([]*domainLR.LorryReceipt, error) {
	if len(ids) == 0 {
		return []*domainLR.LorryReceipt{}, nil
	}
	client := r.client.Querier(ctx)

	receipts := make([]*domainLR.LorryReceipt, 0, len(ids))
	query := `SELECT ` + lorryReceiptColumns + ` FROM lorry_receipts WHERE id = ANY($1)`
	if err := client.SelectContext(ctx, &receipts, query, pq.Array(ids)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get lorry receipts").
			Mark(ierr.ErrDatabase)
	}
	return receipts, nil
}

func (r *lorryReceiptRepository) Update(ctx context.Context, lr *domainLR.LorryReceipt) error {
	client := r.client.Querier(ctx)

	lr.UpdatedAt = time.Now().UTC()

	query := `UPDATE lorry_receipts SET
		lr_date = :lr_date,
		consignor_id = :consignor_id,
		consignee_id = :consignee_id,
		vehicle_id = :vehicle_id,
		origin = :origin,
		destination = :destination,
		packages = :packages,
		description = :description,
		actual_weight = :actual_weight,
		charged_weight = :charged_weight,
		freight_charge = :freight_charge,
		hamali_charge = :hamali_charge,
		other_charges = :other_charges,
		freight_type = :freight_type,
		status = :status,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id`

	res, err := sqlx.NamedExecContext(ctx, client, query, lr)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update lorry receipt").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("lorry receipt not found").
			WithHintf("Lorry receipt %s does not exist", lr.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *lorryReceiptRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	res, err := client.ExecContext(ctx, `DELETE FROM lorry_receipts WHERE id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete lorry receipt").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("lorry receipt not found").
			WithHintf("Lorry receipt %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *lorryReceiptRepository) List(ctx context.Context, filter *types.LorryReceiptFilter) ([]*domainLR.LorryReceipt, error) {
	client := r.client.Querier(ctx)

	query := `SELECT ` + lorryReceiptColumns + ` FROM lorry_receipts WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyLorryReceiptFilter(query, args, filter)
	query += ` ORDER BY lr_number DESC`
	query, args = applyPagination(query, args, filter.GetLimit(), filter.GetOffset())

	receipts := make([]*domainLR.LorryReceipt, 0)
	if err := client.SelectContext(ctx, &receipts, client.Rebind(query), args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list lorry receipts").
			Mark(ierr.ErrDatabase)
	}
	return receipts, nil
}

func (r *lorryReceiptRepository) Count(ctx context.Context, filter *types.LorryReceiptFilter) (int, error) {
	client := r.client.Querier(ctx)

	query := `SELECT COUNT(*) FROM lorry_receipts WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyLorryReceiptFilter(query, args, filter)

	var count int
	if err := client.GetContext(ctx, &count, client.Rebind(query), args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count lorry receipts").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *lorryReceiptRepository) UpdateStatus(ctx context.Context, id string, status types.LorryReceiptStatus) error {
	return r.UpdateStatusBulk(ctx, []string{id}, status)
}

func (r *lorryReceiptRepository) UpdateStatusBulk(ctx context.Context, ids []string, status types.LorryReceiptStatus) error {
	if len(ids) == 0 {
		return nil
	}
	client := r.client.Querier(ctx)

	query := `UPDATE lorry_receipts
		SET status = $1, updated_at = CURRENT_TIMESTAMP, updated_by = $2
		WHERE id = ANY($3)`
	if _, err := client.ExecContext(ctx, query, status, types.GetUserID(ctx), pq.Array(ids)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update lorry receipt status").
			Mark(ierr.ErrDatabase)
	}

	r.log.Infow("updated lorry receipt status",
		"lr_ids", ids,
		"status", status)
	return nil
}

func (r *lorryReceiptRepository) DeleteAll(ctx context.Context) error {
	client := r.client.Querier(ctx)
	if _, err := client.ExecContext(ctx, `DELETE FROM lorry_receipts`); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete lorry receipts").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func applyLorryReceiptFilter(query string, args []interface{}, filter *types.LorryReceiptFilter) (string, []interface{}) {
	if filter == nil {
		return query, args
	}
	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, *filter.Status)
	}
	if filter.ConsignorID != nil {
		query += ` AND consignor_id = ?`
		args = append(args, *filter.ConsignorID)
	}
	if filter.ConsigneeID != nil {
		query += ` AND consignee_id = ?`
		args = append(args, *filter.ConsigneeID)
	}
	if filter.VehicleID != nil {
		query += ` AND vehicle_id = ?`
		args = append(args, *filter.VehicleID)
	}
	return query, args
}
