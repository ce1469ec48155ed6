package types

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment-derived settlement status of an invoice
// or a truck hiring note. It is always recomputed from the full payment
// set, never set independently.
type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "UNPAID"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPaid          PaymentStatus = "PAID"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Validate() error {
	allowed := []PaymentStatus{
		PaymentStatusUnpaid,
		PaymentStatusPartiallyPaid,
		PaymentStatusPaid,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid payment status: %s", s)
	}
	return nil
}

// DerivePaymentStatus classifies the settlement state of a document from
// the sum of its payments against the amount due. Overpayment still
// classifies as PAID.
func DerivePaymentStatus(paid, due decimal.Decimal) PaymentStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return PaymentStatusUnpaid
	case paid.LessThan(due):
		return PaymentStatusPartiallyPaid
	default:
		return PaymentStatusPaid
	}
}

// PaymentTargetType indicates what entity a payment is being made against
type PaymentTargetType string

const (
	PaymentTargetTypeInvoice         PaymentTargetType = "INVOICE"
	PaymentTargetTypeTruckHiringNote PaymentTargetType = "THN"
)

func (t PaymentTargetType) String() string {
	return string(t)
}

func (t PaymentTargetType) Validate() error {
	allowed := []PaymentTargetType{
		PaymentTargetTypeInvoice,
		PaymentTargetTypeTruckHiringNote,
	}
	if !lo.Contains(allowed, t) {
		return fmt.Errorf("invalid payment target type: %s", t)
	}
	return nil
}

// PaymentMode is how a payment was collected
type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "CASH"
	PaymentModeCheque       PaymentMode = "CHEQUE"
	PaymentModeUPI          PaymentMode = "UPI"
	PaymentModeBankTransfer PaymentMode = "BANK_TRANSFER"
	PaymentModeOther        PaymentMode = "OTHER"
)

func (m PaymentMode) String() string {
	return string(m)
}

func (m PaymentMode) Validate() error {
	allowed := []PaymentMode{
		PaymentModeCash,
		PaymentModeCheque,
		PaymentModeUPI,
		PaymentModeBankTransfer,
		PaymentModeOther,
	}
	if !lo.Contains(allowed, m) {
		return fmt.Errorf("invalid payment mode: %s", m)
	}
	return nil
}

// PaymentFilter represents the filter for listing payments
type PaymentFilter struct {
	*QueryFilter

	TargetType *PaymentTargetType `form:"target_type"`
	TargetID   *string            `form:"target_id"`
	Mode       *PaymentMode       `form:"mode"`
}
