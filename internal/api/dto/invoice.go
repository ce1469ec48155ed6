package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nandi-devi/tms-app/internal/domain/invoice"
	"github.com/nandi-devi/tms-app/internal/types"
)

type CreateInvoiceRequest struct {
	// Number is optional; when omitted the next number is issued by the
	// sequence allocator
	Number          *int64          `json:"invoice_number" binding:"omitempty,gt=0"`
	Date            time.Time       `json:"invoice_date" binding:"required"`
	CustomerID      string          `json:"customer_id" binding:"required"`
	LorryReceiptIDs []string        `json:"lorry_receipt_ids" binding:"required,min=1"`
	TaxableAmount   decimal.Decimal `json:"taxable_amount"`
	CGST            decimal.Decimal `json:"cgst"`
	SGST            decimal.Decimal `json:"sgst"`
	IGST            decimal.Decimal `json:"igst"`
	GrandTotal      decimal.Decimal `json:"grand_total" binding:"required"`
}

func (r *CreateInvoiceRequest) ToInvoice(ctx context.Context) *invoice.Invoice {
	return &invoice.Invoice{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		Date:            r.Date,
		CustomerID:      r.CustomerID,
		LorryReceiptIDs: r.LorryReceiptIDs,
		TaxableAmount:   r.TaxableAmount,
		CGST:            r.CGST,
		SGST:            r.SGST,
		IGST:            r.IGST,
		GrandTotal:      r.GrandTotal,
		Status:          types.PaymentStatusUnpaid,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

type UpdateInvoiceRequest struct {
	Date            *time.Time       `json:"invoice_date"`
	LorryReceiptIDs []string         `json:"lorry_receipt_ids" binding:"omitempty,min=1"`
	TaxableAmount   *decimal.Decimal `json:"taxable_amount"`
	CGST            *decimal.Decimal `json:"cgst"`
	SGST            *decimal.Decimal `json:"sgst"`
	IGST            *decimal.Decimal `json:"igst"`
	GrandTotal      *decimal.Decimal `json:"grand_total"`
}

type InvoiceResponse struct {
	*invoice.Invoice

	// LorryReceipts carries the expanded LRs billed by this invoice
	LorryReceipts []*LorryReceiptResponse `json:"lorry_receipts,omitempty"`
}

// ListInvoicesResponse represents a paginated list of invoices
type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]
