package payment

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// Payment records money received against an invoice or paid out against
// a truck hiring note. Every create, update and delete of a payment
// triggers a reconciliation pass on its target.
type Payment struct {
	// Unique identifier for the payment
	ID string `db:"id" json:"id"`
	// The target_type indicates what entity this payment settles
	TargetType types.PaymentTargetType `db:"target_type" json:"target_type"`
	// The target_id specifies which invoice or truck hiring note
	TargetID string `db:"target_id" json:"target_id"`
	// Payment value; always positive
	Amount decimal.Decimal `db:"amount" json:"amount"`
	// Date the payment was received or made
	Date time.Time `db:"payment_date" json:"payment_date"`
	// How the payment was collected
	Mode types.PaymentMode `db:"mode" json:"mode"`
	// Cheque number, UTR, or generated receipt reference
	ReferenceNumber string `db:"reference_number" json:"reference_number,omitempty"`
	Notes           string `db:"notes" json:"notes,omitempty"`

	types.BaseModel
}

// Validate validates the payment
func (p *Payment) Validate() error {
	if p.Amount.IsZero() || p.Amount.IsNegative() {
		return ierr.NewError("invalid amount").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if err := p.TargetType.Validate(); err != nil {
		return ierr.NewError("invalid target type").
			WithHint("Payment target type is invalid").
			Mark(ierr.ErrValidation)
	}
	if p.TargetID == "" {
		return ierr.NewError("invalid target id").
			WithHint("Payment target id is required").
			Mark(ierr.ErrValidation)
	}
	if err := p.Mode.Validate(); err != nil {
		return ierr.NewError("invalid payment mode").
			WithHint("Payment mode is invalid").
			Mark(ierr.ErrValidation)
	}
	return nil
}
