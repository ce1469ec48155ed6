package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nandi-devi/tms-app/internal/domain/truckhiringnote"
	"github.com/nandi-devi/tms-app/internal/types"
)

type CreateTruckHiringNoteRequest struct {
	// Number is optional; when omitted the next number is issued by the
	// sequence allocator
	Number        *int64          `json:"thn_number" binding:"omitempty,gt=0"`
	Date          time.Time       `json:"thn_date" binding:"required"`
	TruckOwner    string          `json:"truck_owner" binding:"required"`
	TruckNumber   string          `json:"truck_number" binding:"required"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	FreightAmount decimal.Decimal `json:"freight_amount" binding:"required"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
}

func (r *CreateTruckHiringNoteRequest) ToTruckHiringNote(ctx context.Context) *truckhiringnote.TruckHiringNote {
	return &truckhiringnote.TruckHiringNote{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TRUCK_HIRING_NOTE),
		Date:          r.Date,
		TruckOwner:    r.TruckOwner,
		TruckNumber:   r.TruckNumber,
		Origin:        r.Origin,
		Destination:   r.Destination,
		FreightAmount: r.FreightAmount,
		AdvanceAmount: r.AdvanceAmount,
		PaidAmount:    decimal.Zero,
		BalanceAmount: r.FreightAmount,
		Status:        types.PaymentStatusUnpaid,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdateTruckHiringNoteRequest struct {
	Date          *time.Time       `json:"thn_date"`
	TruckOwner    *string          `json:"truck_owner"`
	TruckNumber   *string          `json:"truck_number"`
	Origin        *string          `json:"origin"`
	Destination   *string          `json:"destination"`
	FreightAmount *decimal.Decimal `json:"freight_amount"`
	AdvanceAmount *decimal.Decimal `json:"advance_amount"`
}

type TruckHiringNoteResponse struct {
	*truckhiringnote.TruckHiringNote
}

// ListTruckHiringNotesResponse represents a paginated list of truck hiring notes
type ListTruckHiringNotesResponse = types.ListResponse[*TruckHiringNoteResponse]
