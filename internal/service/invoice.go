package service

import (
	"context"
	"time"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/invoice"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// InvoiceService manages invoices and drives the lorry receipt
// lifecycle transitions that follow from billing
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	UpdateInvoice(ctx context.Context, id string, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id string) error
	ListInvoices(ctx context.Context, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error)
}

type invoiceService struct {
	ServiceParams
	numberingService      NumberingService
	lifecycleService      LifecycleService
	reconciliationService ReconciliationService
}

func NewInvoiceService(
	params ServiceParams,
	numberingService NumberingService,
	lifecycleService LifecycleService,
	reconciliationService ReconciliationService,
) InvoiceService {
	return &invoiceService{
		ServiceParams:         params,
		numberingService:      numberingService,
		lifecycleService:      lifecycleService,
		reconciliationService: reconciliationService,
	}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv := req.ToInvoice(ctx)
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.CustomerRepo.Get(ctx, inv.CustomerID); err != nil {
		return nil, err
	}

	// Creating the invoice and flipping its LRs to INVOICED must be
	// all-or-nothing: a failed attach (e.g. an LR already billed)
	// rolls back the invoice row together with the number allocation,
	// so a rejected create leaves no gap in the sequence.
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		n, err := s.numberingService.ResolveNumber(ctx, types.DocumentTypeInvoice, req.Number)
		if err != nil {
			return err
		}
		inv.Number = n

		if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		return s.lifecycleService.AttachLorryReceipts(ctx, inv.LorryReceiptIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.toInvoiceResponse(ctx, inv), nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toInvoiceResponse(ctx, inv), nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	before := inv.LorryReceiptIDs
	applyInvoiceUpdate(inv, req)
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	inv.UpdatedAt = time.Now().UTC()
	inv.UpdatedBy = types.GetUserID(ctx)

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.lifecycleService.SyncLorryReceipts(ctx, before, inv.LorryReceiptIDs); err != nil {
			return err
		}
		return s.InvoiceRepo.Update(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	// The grand total may have moved relative to the recorded payments
	if recErr := s.reconciliationService.ReconcileInvoice(ctx, inv.ID); recErr != nil {
		s.Logger.Errorf("failed to reconcile invoice %s after update: %v", inv.ID, recErr)
	} else if fresh, getErr := s.InvoiceRepo.Get(ctx, inv.ID); getErr == nil {
		inv = fresh
	}

	return s.toInvoiceResponse(ctx, inv), nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	payments, err := s.PaymentRepo.ListByTarget(ctx, types.PaymentTargetTypeInvoice, id)
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		return ierr.NewError("invoice has payments").
			WithHintf("Invoice %d has %d payment(s) recorded against it; delete them first", inv.Number, len(payments)).
			Mark(ierr.ErrInvalidOperation)
	}

	return s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.lifecycleService.DetachLorryReceipts(ctx, inv.LorryReceiptIDs); err != nil {
			return err
		}
		return s.InvoiceRepo.Delete(ctx, id)
	})
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error) {
	if filter == nil {
		filter = &types.InvoiceFilter{QueryFilter: &types.QueryFilter{}}
	}

	invoices, err := s.InvoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.InvoiceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, &dto.InvoiceResponse{Invoice: inv})
	}

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

// toInvoiceResponse expands the billed LRs; expansion failures degrade
// to the bare invoice rather than failing the request
func (s *invoiceService) toInvoiceResponse(ctx context.Context, inv *invoice.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{Invoice: inv}

	lrs, err := s.LorryReceiptRepo.GetByIDs(ctx, inv.LorryReceiptIDs)
	if err != nil {
		s.Logger.Warnf("failed to expand lorry receipts for invoice %s: %v", inv.ID, err)
		return resp
	}
	resp.LorryReceipts = make([]*dto.LorryReceiptResponse, 0, len(lrs))
	for _, lr := range lrs {
		resp.LorryReceipts = append(resp.LorryReceipts, dto.NewLorryReceiptResponse(lr))
	}
	return resp
}

func applyInvoiceUpdate(inv *invoice.Invoice, req *dto.UpdateInvoiceRequest) {
	if req.Date != nil {
		inv.Date = *req.Date
	}
	if req.LorryReceiptIDs != nil {
		inv.LorryReceiptIDs = req.LorryReceiptIDs
	}
	if req.TaxableAmount != nil {
		inv.TaxableAmount = *req.TaxableAmount
	}
	if req.CGST != nil {
		inv.CGST = *req.CGST
	}
	if req.SGST != nil {
		inv.SGST = *req.SGST
	}
	if req.IGST != nil {
		inv.IGST = *req.IGST
	}
	if req.GrandTotal != nil {
		inv.GrandTotal = *req.GrandTotal
	}
}
