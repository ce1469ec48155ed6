package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	domainPayment "github.com/nandi-devi/tms-app/internal/domain/payment"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/postgres"
	"github.com/nandi-devi/tms-app/internal/types"
)

type paymentRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewPaymentRepository(client postgres.IClient, log *logger.Logger) domainPayment.Repository {
	return &paymentRepository{
		client: client,
		log:    log,
	}
}

const paymentColumns = `id, target_type, target_id, amount, payment_date, mode,
	reference_number, notes, created_at, updated_at, created_by, updated_by`

func (r *paymentRepository) Create(ctx context.Context, p *domainPayment.Payment) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating payment",
		"payment_id", p.ID,
		"target_type", p.TargetType,
		"target_id", p.TargetID,
		"amount", p.Amount)

	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES (:id, :target_type, :target_id, :amount, :payment_date, :mode,
			:reference_number, :notes, :created_at, :updated_at, :created_by, :updated_by)`

	if _, err := sqlx.NamedExecContext(ctx, client, query, p); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create payment").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id string) (*domainPayment.Payment, error) {
	client := r.client.Querier(ctx)

	var p domainPayment.Payment
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	if err := client.GetContext(ctx, &p, query, id); err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("payment not found").
				WithHintf("Payment %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get payment").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *domainPayment.Payment) error {
	client := r.client.Querier(ctx)

	p.UpdatedAt = time.Now().UTC()

	query := `UPDATE payments SET
		target_type = :target_type,
		target_id = :target_id,
		amount = :amount,
		payment_date = :payment_date,
		mode = :mode,
		reference_number = :reference_number,
		notes = :notes,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id`

	res, err := sqlx.NamedExecContext(ctx, client, query, p)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update payment").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("payment not found").
			WithHintf("Payment %s does not exist", p.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	res, err := client.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete payment").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("payment not found").
			WithHintf("Payment %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *paymentRepository) List(ctx context.Context, filter *types.PaymentFilter) ([]*domainPayment.Payment, error) {
	client := r.client.Querier(ctx)

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyPaymentFilter(query, args, filter)
	query += ` ORDER BY payment_date DESC, id DESC`
	query, args = applyPagination(query, args, filter.GetLimit(), filter.GetOffset())

	payments := make([]*domainPayment.Payment, 0)
	if err := client.SelectContext(ctx, &payments, client.Rebind(query), args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments").
			Mark(ierr.ErrDatabase)
	}
	return payments, nil
}

func (r *paymentRepository) Count(ctx context.Context, filter *types.PaymentFilter) (int, error) {
	client := r.client.Querier(ctx)

	query := `SELECT COUNT(*) FROM payments WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyPaymentFilter(query, args, filter)

	var count int
	if err := client.GetContext(ctx, &count, client.Rebind(query), args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count payments").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *paymentRepository) ListByTarget(ctx context.Context, targetType types.PaymentTargetType, targetID string) ([]*domainPayment.Payment, error) {
	client := r.client.Querier(ctx)

	payments := make([]*domainPayment.Payment, 0)
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE target_type = $1 AND target_id = $2
		ORDER BY payment_date ASC, id ASC`
	if err := client.SelectContext(ctx, &payments, query, targetType, targetID); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments for target").
			Mark(ierr.ErrDatabase)
	}
	return payments, nil
}

func (r *paymentRepository) DeleteAll(ctx context.Context) error {
	client := r.client.Querier(ctx)
	if _, err := client.ExecContext(ctx, `DELETE FROM payments`); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete payments").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func applyPaymentFilter(query string, args []interface{}, filter *types.PaymentFilter) (string, []interface{}) {
	if filter == nil {
		return query, args
	}
	if filter.TargetType != nil {
		query += ` AND target_type = ?`
		args = append(args, *filter.TargetType)
	}
	if filter.TargetID != nil {
		query += ` AND target_id = ?`
		args = append(args, *filter.TargetID)
	}
	if filter.Mode != nil {
		query += ` AND mode = ?`
		args = append(args, *filter.Mode)
	}
	return query, args
}
