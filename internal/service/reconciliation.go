package service

import (
	"context"

	"github.com/shopspring/decimal"

	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// ReconciliationService recomputes the settlement state of an invoice
// or truck hiring note from the full set of payments recorded against
// it. Reconciliation is idempotent: running it any number of times
// against the same payment set converges on the same state, and a
// write only happens when the derived state differs from the stored one.
type ReconciliationService interface {
	// ReconcileTarget dispatches to the reconciler for the target type.
	// A missing target is a logged no-op so that payments orphaned by a
	// deleted document never wedge payment mutations.
	ReconcileTarget(ctx context.Context, targetType types.PaymentTargetType, targetID string) error

	ReconcileInvoice(ctx context.Context, invoiceID string) error
	ReconcileTruckHiringNote(ctx context.Context, thnID string) error
}

type reconciliationService struct {
	ServiceParams
}

func NewReconciliationService(params ServiceParams) ReconciliationService {
	return &reconciliationService{
		ServiceParams: params,
	}
}

func (s *reconciliationService) ReconcileTarget(ctx context.Context, targetType types.PaymentTargetType, targetID string) error {
	switch targetType {
	case types.PaymentTargetTypeInvoice:
		return s.ReconcileInvoice(ctx, targetID)
	case types.PaymentTargetTypeTruckHiringNote:
		return s.ReconcileTruckHiringNote(ctx, targetID)
	default:
		return ierr.NewError("unknown payment target type").
			WithHintf("Cannot reconcile target type %s", targetType).
			Mark(ierr.ErrValidation)
	}
}

func (s *reconciliationService) ReconcileInvoice(ctx context.Context, invoiceID string) error {
	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		if ierr.IsNotFound(err) {
			s.Logger.Warnf("reconcile skipped: invoice %s no longer exists", invoiceID)
			return nil
		}
		return err
	}

	paid, err := s.sumPayments(ctx, types.PaymentTargetTypeInvoice, invoiceID)
	if err != nil {
		return err
	}

	status := types.DerivePaymentStatus(paid, inv.GrandTotal)
	if status == inv.Status {
		return nil
	}

	s.Logger.Infof("invoice %s status %s -> %s (paid %s of %s)",
		invoiceID, inv.Status, status, paid, inv.GrandTotal)
	return s.InvoiceRepo.UpdateStatus(ctx, invoiceID, status)
}

func (s *reconciliationService) ReconcileTruckHiringNote(ctx context.Context, thnID string) error {
	thn, err := s.TruckHiringNoteRepo.Get(ctx, thnID)
	if err != nil {
		if ierr.IsNotFound(err) {
			s.Logger.Warnf("reconcile skipped: truck hiring note %s no longer exists", thnID)
			return nil
		}
		return err
	}

	paid, err := s.sumPayments(ctx, types.PaymentTargetTypeTruckHiringNote, thnID)
	if err != nil {
		return err
	}

	balance := thn.FreightAmount.Sub(paid)
	status := types.DerivePaymentStatus(paid, thn.FreightAmount)
	if status == thn.Status && paid.Equal(thn.PaidAmount) && balance.Equal(thn.BalanceAmount) {
		return nil
	}

	s.Logger.Infof("truck hiring note %s status %s -> %s (paid %s, balance %s)",
		thnID, thn.Status, status, paid, balance)
	return s.TruckHiringNoteRepo.UpdateFinancials(ctx, thnID, paid, balance, status)
}

func (s *reconciliationService) sumPayments(ctx context.Context, targetType types.PaymentTargetType, targetID string) (decimal.Decimal, error) {
	payments, err := s.PaymentRepo.ListByTarget(ctx, targetType, targetID)
	if err != nil {
		return decimal.Zero, err
	}

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	return paid, nil
}
