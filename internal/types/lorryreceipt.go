package types

import (
	"fmt"

	"github.com/samber/lo"
)

// LorryReceiptStatus tracks the lifecycle of a lorry receipt.
//
// CREATED and INVOICED are coordinator-driven: attaching the LR to an
// invoice moves it to INVOICED, detaching reverts it to CREATED.
// IN_TRANSIT and DELIVERED are operational states recorded manually.
// PAID is reachable only by an explicit manual status update.
type LorryReceiptStatus string

const (
	LorryReceiptStatusCreated   LorryReceiptStatus = "CREATED"
	LorryReceiptStatusInTransit LorryReceiptStatus = "IN_TRANSIT"
	LorryReceiptStatusDelivered LorryReceiptStatus = "DELIVERED"
	LorryReceiptStatusInvoiced  LorryReceiptStatus = "INVOICED"
	LorryReceiptStatusPaid      LorryReceiptStatus = "PAID"
)

func (s LorryReceiptStatus) String() string {
	return string(s)
}

func (s LorryReceiptStatus) Validate() error {
	allowed := []LorryReceiptStatus{
		LorryReceiptStatusCreated,
		LorryReceiptStatusInTransit,
		LorryReceiptStatusDelivered,
		LorryReceiptStatusInvoiced,
		LorryReceiptStatusPaid,
	}
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid lorry receipt status: %s", s)
	}
	return nil
}

// IsManuallySettable reports whether operators may move an LR into this
// status directly. CREATED and INVOICED are owned by the invoice
// lifecycle coordinator and cannot be set by hand.
func (s LorryReceiptStatus) IsManuallySettable() bool {
	return lo.Contains([]LorryReceiptStatus{
		LorryReceiptStatusInTransit,
		LorryReceiptStatusDelivered,
		LorryReceiptStatusPaid,
	}, s)
}

// FreightType is the charge basis printed on a lorry receipt
type FreightType string

const (
	FreightTypePaid       FreightType = "PAID"
	FreightTypeToPay      FreightType = "TO_PAY"
	FreightTypeToBeBilled FreightType = "TO_BE_BILLED"
)

func (t FreightType) String() string {
	return string(t)
}

func (t FreightType) Validate() error {
	allowed := []FreightType{
		FreightTypePaid,
		FreightTypeToPay,
		FreightTypeToBeBilled,
	}
	if !lo.Contains(allowed, t) {
		return fmt.Errorf("invalid freight type: %s", t)
	}
	return nil
}

// LorryReceiptFilter represents the filter for listing lorry receipts
type LorryReceiptFilter struct {
	*QueryFilter

	Status      *LorryReceiptStatus `form:"status"`
	ConsignorID *string             `form:"consignor_id"`
	ConsigneeID *string             `form:"consignee_id"`
	VehicleID   *string             `form:"vehicle_id"`
}
