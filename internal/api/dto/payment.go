package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nandi-devi/tms-app/internal/domain/payment"
	"github.com/nandi-devi/tms-app/internal/types"
)

type CreatePaymentRequest struct {
	TargetType      types.PaymentTargetType `json:"target_type" binding:"required"`
	TargetID        string                  `json:"target_id" binding:"required"`
	Amount          decimal.Decimal         `json:"amount" binding:"required"`
	Date            time.Time               `json:"payment_date" binding:"required"`
	Mode            types.PaymentMode       `json:"mode" binding:"required"`
	ReferenceNumber string                  `json:"reference_number"`
	Notes           string                  `json:"notes"`
}

func (r *CreatePaymentRequest) ToPayment(ctx context.Context) *payment.Payment {
	return &payment.Payment{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		TargetType:      r.TargetType,
		TargetID:        r.TargetID,
		Amount:          r.Amount,
		Date:            r.Date,
		Mode:            r.Mode,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

type UpdatePaymentRequest struct {
	Amount          *decimal.Decimal   `json:"amount"`
	Date            *time.Time         `json:"payment_date"`
	Mode            *types.PaymentMode `json:"mode"`
	ReferenceNumber *string            `json:"reference_number"`
	Notes           *string            `json:"notes"`
}

type PaymentResponse struct {
	*payment.Payment
}

// ListPaymentsResponse represents a paginated list of payments
type ListPaymentsResponse = types.ListResponse[*PaymentResponse]
