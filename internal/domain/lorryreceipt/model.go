package lorryreceipt

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// LorryReceipt is the consignment note for a single shipment. It is the
// foundational transport-service record: invoices bill one or more LRs,
// and the LR status follows the invoice lifecycle once billed.
type LorryReceipt struct {
	// Unique identifier for the lorry receipt
	ID string `db:"id" json:"id"`
	// Human-facing document number issued by the sequence allocator
	// (or supplied manually when the numbering settings permit it)
	Number int64 `db:"lr_number" json:"lr_number"`
	// Booking date
	Date time.Time `db:"lr_date" json:"lr_date"`
	// Party shipping the goods
	ConsignorID string `db:"consignor_id" json:"consignor_id"`
	// Party receiving the goods
	ConsigneeID string `db:"consignee_id" json:"consignee_id"`
	// Vehicle carrying the consignment
	VehicleID   string `db:"vehicle_id" json:"vehicle_id"`
	Origin      string `db:"origin" json:"origin"`
	Destination string `db:"destination" json:"destination"`
	// Number of packages booked
	Packages int `db:"packages" json:"packages"`
	// Goods description printed on the LR
	Description string `db:"description" json:"description,omitempty"`
	// Weights in kilograms
	ActualWeight  decimal.Decimal `db:"actual_weight" json:"actual_weight"`
	ChargedWeight decimal.Decimal `db:"charged_weight" json:"charged_weight"`
	// Charge components
	FreightCharge decimal.Decimal `db:"freight_charge" json:"freight_charge"`
	HamaliCharge  decimal.Decimal `db:"hamali_charge" json:"hamali_charge"`
	OtherCharges  decimal.Decimal `db:"other_charges" json:"other_charges"`
	// Charge basis for the freight
	FreightType types.FreightType `db:"freight_type" json:"freight_type"`
	// Lifecycle status; see types.LorryReceiptStatus for the state machine
	Status types.LorryReceiptStatus `db:"status" json:"status"`

	types.BaseModel
}

// TotalCharges returns the sum of all charge components
func (lr *LorryReceipt) TotalCharges() decimal.Decimal {
	return lr.FreightCharge.Add(lr.HamaliCharge).Add(lr.OtherCharges)
}

// Validate validates the lorry receipt
func (lr *LorryReceipt) Validate() error {
	if lr.ConsignorID == "" || lr.ConsigneeID == "" {
		return ierr.NewError("consignor and consignee are required").
			WithHint("Both consignor and consignee must be set").
			Mark(ierr.ErrValidation)
	}
	if lr.VehicleID == "" {
		return ierr.NewError("vehicle is required").
			WithHint("A vehicle must be assigned to the lorry receipt").
			Mark(ierr.ErrValidation)
	}
	if lr.FreightCharge.IsNegative() || lr.HamaliCharge.IsNegative() || lr.OtherCharges.IsNegative() {
		return ierr.NewError("invalid charges").
			WithHint("Charges cannot be negative").
			Mark(ierr.ErrValidation)
	}
	if err := lr.FreightType.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Freight type is invalid").
			Mark(ierr.ErrValidation)
	}
	if err := lr.Status.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint("Lorry receipt status is invalid").
			Mark(ierr.ErrValidation)
	}
	return nil
}
