package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nandi-devi/tms-app/internal/domain/lorryreceipt"
	"github.com/nandi-devi/tms-app/internal/types"
)

type CreateLorryReceiptRequest struct {
	// Number is optional; when omitted the next number is issued by the
	// sequence allocator. Supplying it requires manual entry to be
	// enabled in the numbering settings.
	Number        *int64            `json:"lr_number" binding:"omitempty,gt=0"`
	Date          time.Time         `json:"lr_date" binding:"required"`
	ConsignorID   string            `json:"consignor_id" binding:"required"`
	ConsigneeID   string            `json:"consignee_id" binding:"required"`
	VehicleID     string            `json:"vehicle_id" binding:"required"`
	Origin        string            `json:"origin"`
	Destination   string            `json:"destination"`
	Packages      int               `json:"packages" binding:"omitempty,gte=0"`
	Description   string            `json:"description"`
	ActualWeight  decimal.Decimal   `json:"actual_weight"`
	ChargedWeight decimal.Decimal   `json:"charged_weight"`
	FreightCharge decimal.Decimal   `json:"freight_charge"`
	HamaliCharge  decimal.Decimal   `json:"hamali_charge"`
	OtherCharges  decimal.Decimal   `json:"other_charges"`
	FreightType   types.FreightType `json:"freight_type" binding:"required"`
}

func (r *CreateLorryReceiptRequest) ToLorryReceipt(ctx context.Context) *lorryreceipt.LorryReceipt {
	return &lorryreceipt.LorryReceipt{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LORRY_RECEIPT),
		Date:          r.Date,
		ConsignorID:   r.ConsignorID,
		ConsigneeID:   r.ConsigneeID,
		VehicleID:     r.VehicleID,
		Origin:        r.Origin,
		Destination:   r.Destination,
		Packages:      r.Packages,
		Description:   r.Description,
		ActualWeight:  r.ActualWeight,
		ChargedWeight: r.ChargedWeight,
		FreightCharge: r.FreightCharge,
		HamaliCharge:  r.HamaliCharge,
		OtherCharges:  r.OtherCharges,
		FreightType:   r.FreightType,
		Status:        types.LorryReceiptStatusCreated,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdateLorryReceiptRequest struct {
	Date          *time.Time         `json:"lr_date"`
	ConsignorID   *string            `json:"consignor_id"`
	ConsigneeID   *string            `json:"consignee_id"`
	VehicleID     *string            `json:"vehicle_id"`
	Origin        *string            `json:"origin"`
	Destination   *string            `json:"destination"`
	Packages      *int               `json:"packages" binding:"omitempty,gte=0"`
	Description   *string            `json:"description"`
	ActualWeight  *decimal.Decimal   `json:"actual_weight"`
	ChargedWeight *decimal.Decimal   `json:"charged_weight"`
	FreightCharge *decimal.Decimal   `json:"freight_charge"`
	HamaliCharge  *decimal.Decimal   `json:"hamali_charge"`
	OtherCharges  *decimal.Decimal   `json:"other_charges"`
	FreightType   *types.FreightType `json:"freight_type"`
}

type UpdateLorryReceiptStatusRequest struct {
	Status types.LorryReceiptStatus `json:"status" binding:"required"`
}

type LorryReceiptResponse struct {
	*lorryreceipt.LorryReceipt

	// TotalCharges is the sum of freight, hamali and other charges
	TotalCharges decimal.Decimal `json:"total_charges"`
}

func NewLorryReceiptResponse(lr *lorryreceipt.LorryReceipt) *LorryReceiptResponse {
	return &LorryReceiptResponse{
		LorryReceipt: lr,
		TotalCharges: lr.TotalCharges(),
	}
}

// ListLorryReceiptsResponse represents a paginated list of lorry receipts
type ListLorryReceiptsResponse = types.ListResponse[*LorryReceiptResponse]
