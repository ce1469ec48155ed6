package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// Invoice bills a customer for one or more lorry receipts. Its Status
// is always a pure function of the payments recorded against it and is
// recomputed by the reconciliation service, never set directly.
type Invoice struct {
	// Unique identifier for the invoice
	ID string `db:"id" json:"id"`
	// Human-facing document number issued by the sequence allocator
	// (or supplied manually when the numbering settings permit it)
	Number int64 `db:"invoice_number" json:"invoice_number"`
	// Invoice date
	Date time.Time `db:"invoice_date" json:"invoice_date"`
	// Customer being billed
	CustomerID string `db:"customer_id" json:"customer_id"`
	// Lorry receipts billed by this invoice, in the order supplied
	LorryReceiptIDs []string `json:"lorry_receipt_ids"`
	// Tax breakdown
	TaxableAmount decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	CGST          decimal.Decimal `db:"cgst" json:"cgst"`
	SGST          decimal.Decimal `db:"sgst" json:"sgst"`
	IGST          decimal.Decimal `db:"igst" json:"igst"`
	// Total payable including taxes; the target amount for settlement
	GrandTotal decimal.Decimal `db:"grand_total" json:"grand_total"`
	// Settlement status derived from the payment sum
	Status types.PaymentStatus `db:"status" json:"status"`

	types.BaseModel
}

// Validate validates the invoice
func (i *Invoice) Validate() error {
	if i.CustomerID == "" {
		return ierr.NewError("customer is required").
			WithHint("Invoice customer cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if len(i.LorryReceiptIDs) == 0 {
		return ierr.NewError("no lorry receipts").
			WithHint("An invoice must bill at least one lorry receipt").
			Mark(ierr.ErrValidation)
	}
	if i.GrandTotal.IsNegative() {
		return ierr.NewError("invalid grand total").
			WithHint("Invoice grand total cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if err := i.Status.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Invoice status is invalid").
			Mark(ierr.ErrValidation)
	}
	return nil
}
