package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	domainInvoice "github.com/nandi-devi/tms-app/internal/domain/invoice"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/logger"
	"github.com/nandi-devi/tms-app/internal/postgres"
	"github.com/nandi-devi/tms-app/internal/types"
)

type invoiceRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewInvoiceRepository(client postgres.IClient, log *logger.Logger) domainInvoice.Repository {
	return &invoiceRepository{
		client: client,
		log:    log,
	}
}

// invoiceRow adapts the domain model for sqlx scanning; the LR id set
// is stored as a TEXT[] column
type invoiceRow struct {
	domainInvoice.Invoice
	LorryReceiptIDs pq.StringArray `db:"lorry_receipt_ids"`
}

func (row *invoiceRow) toDomain() *domainInvoice.Invoice {
	inv := row.Invoice
	inv.LorryReceiptIDs = []string(row.LorryReceiptIDs)
	return &inv
}

func fromDomainInvoice(inv *domainInvoice.Invoice) *invoiceRow {
	return &invoiceRow{
		Invoice:         *inv,
		LorryReceiptIDs: pq.StringArray(inv.LorryReceiptIDs),
	}
}

const invoiceColumns = `id, invoice_number, invoice_date, customer_id, lorry_receipt_ids,
	taxable_amount, cgst, sgst, igst, grand_total, status,
	created_at, updated_at, created_by, updated_by`

func (r *invoiceRepository) Create(ctx context.Context, inv *domainInvoice.Invoice) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating invoice",
		"invoice_id", inv.ID,
		"invoice_number", inv.Number,
		"customer_id", inv.CustomerID,
		"grand_total", inv.GrandTotal)

	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES (:id, :invoice_number, :invoice_date, :customer_id, :lorry_receipt_ids,
			:taxable_amount, :cgst, :sgst, :igst, :grand_total, :status,
			:created_at, :updated_at, :created_by, :updated_by)`

	if _, err := sqlx.NamedExecContext(ctx, client, query, fromDomainInvoice(inv)); err != nil {
		if isUniqueViolation(err, "invoices_invoice_number_key") {
			return ierr.WithError(err).
				WithHintf("Invoice number %d is already in use", inv.Number).
				Mark(ierr.ErrDuplicateNumber)
		}
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*domainInvoice.Invoice, error) {
	client := r.client.Querier(ctx)

	var row invoiceRow
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	if err := client.GetContext(ctx, &row, query, id); err != nil {
		if isNoRows(err) {
			return nil, ierr.NewError("invoice not found").
				WithHintf("Invoice %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get invoice").
			Mark(ierr.ErrDatabase)
	}
	return row.toDomain(), nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *domainInvoice.Invoice) error {
	client := r.client.Querier(ctx)

	inv.UpdatedAt = time.Now().UTC()

	query := `UPDATE invoices SET
		invoice_date = :invoice_date,
		customer_id = :customer_id,
		lorry_receipt_ids = :lorry_receipt_ids,
		taxable_amount = :taxable_amount,
		cgst = :cgst,
		sgst = :sgst,
		igst = :igst,
		grand_total = :grand_total,
		status = :status,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id`

	res, err := sqlx.NamedExecContext(ctx, client, query, fromDomainInvoice(inv))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update invoice").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("invoice not found").
			WithHintf("Invoice %s does not exist", inv.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	res, err := client.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete invoice").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("invoice not found").
			WithHintf("Invoice %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) ([]*domainInvoice.Invoice, error) {
	client := r.client.Querier(ctx)

	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyInvoiceFilter(query, args, filter)
	query += ` ORDER BY invoice_number DESC`
	query, args = applyPagination(query, args, filter.GetLimit(), filter.GetOffset())

	rows := make([]*invoiceRow, 0)
	if err := client.SelectContext(ctx, &rows, client.Rebind(query), args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}

	invoices := make([]*domainInvoice.Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, row.toDomain())
	}
	return invoices, nil
}

func (r *invoiceRepository) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	client := r.client.Querier(ctx)

	query := `SELECT COUNT(*) FROM invoices WHERE 1=1`
	args := make([]interface{}, 0)
	query, args = applyInvoiceFilter(query, args, filter)

	var count int
	if err := client.GetContext(ctx, &count, client.Rebind(query), args...); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count invoices").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id string, status types.PaymentStatus) error {
	client := r.client.Querier(ctx)

	query := `UPDATE invoices
		SET status = $1, updated_at = CURRENT_TIMESTAMP, updated_by = $2
		WHERE id = $3`
	res, err := client.ExecContext(ctx, query, status, types.GetUserID(ctx), id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update invoice status").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("invoice not found").
			WithHintf("Invoice %s does not exist", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *invoiceRepository) DeleteAll(ctx context.Context) error {
	client := r.client.Querier(ctx)
	if _, err := client.ExecContext(ctx, `DELETE FROM invoices`); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete invoices").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func applyInvoiceFilter(query string, args []interface{}, filter *types.InvoiceFilter) (string, []interface{}) {
	if filter == nil {
		return query, args
	}
	if filter.CustomerID != nil {
		query += ` AND customer_id = ?`
		args = append(args, *filter.CustomerID)
	}
	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, *filter.Status)
	}
	return query, args
}
