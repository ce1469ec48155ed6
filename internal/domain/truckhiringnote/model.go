package truckhiringnote

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// TruckHiringNote records the hiring of a third-party truck for a haul.
// PaidAmount, BalanceAmount and Status are derived from the payment set
// by the reconciliation service; FreightAmount is the settlement target.
type TruckHiringNote struct {
	// Unique identifier for the truck hiring note
	ID string `db:"id" json:"id"`
	// Human-facing document number issued by the sequence allocator
	Number int64 `db:"thn_number" json:"thn_number"`
	// Hiring date
	Date time.Time `db:"thn_date" json:"thn_date"`
	// Owner or broker the truck is hired from
	TruckOwner string `db:"truck_owner" json:"truck_owner"`
	// Registration number of the hired truck
	TruckNumber string `db:"truck_number" json:"truck_number"`
	Origin      string `db:"origin" json:"origin"`
	Destination string `db:"destination" json:"destination"`
	// Agreed freight for the haul; the settlement target amount
	FreightAmount decimal.Decimal `db:"freight_amount" json:"freight_amount"`
	// Advance handed over at loading, recorded for reference
	AdvanceAmount decimal.Decimal `db:"advance_amount" json:"advance_amount"`
	// Sum of payments recorded against this note
	PaidAmount decimal.Decimal `db:"paid_amount" json:"paid_amount"`
	// FreightAmount minus PaidAmount; negative on overpayment
	BalanceAmount decimal.Decimal `db:"balance_amount" json:"balance_amount"`
	// Settlement status derived from the payment sum
	Status types.PaymentStatus `db:"status" json:"status"`

	types.BaseModel
}

// Validate validates the truck hiring note
func (t *TruckHiringNote) Validate() error {
	if t.TruckOwner == "" {
		return ierr.NewError("truck owner is required").
			WithHint("Truck owner cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if t.TruckNumber == "" {
		return ierr.NewError("truck number is required").
			WithHint("Truck number cannot be empty").
			Mark(ierr.ErrValidation)
	}
	if t.FreightAmount.IsNegative() {
		return ierr.NewError("invalid freight amount").
			WithHint("Freight amount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if t.AdvanceAmount.IsNegative() {
		return ierr.NewError("invalid advance amount").
			WithHint("Advance amount cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if err := t.Status.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Truck hiring note status is invalid").
			Mark(ierr.ErrValidation)
	}
	return nil
}
