package service

import (
	"context"
	"time"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/payment"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// PaymentService records payments and keeps their targets reconciled.
// Reconciliation after a successful mutation is best-effort: the
// payment write is the source of truth and a failed status update is
// logged, never surfaced, since the next reconciliation pass converges
// on the same derived state.
type PaymentService interface {
	CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error)
	UpdatePayment(ctx context.Context, id string, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	DeletePayment(ctx context.Context, id string) error
	ListPayments(ctx context.Context, filter *types.PaymentFilter) (*dto.ListPaymentsResponse, error)
}

type paymentService struct {
	ServiceParams
	reconciliationService ReconciliationService
}

func NewPaymentService(params ServiceParams, reconciliationService ReconciliationService) PaymentService {
	return &paymentService{
		ServiceParams:         params,
		reconciliationService: reconciliationService,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	p := req.ToPayment(ctx)
	if p.ReferenceNumber == "" {
		p.ReferenceNumber = types.GenerateShortIDWithPrefix("rcpt_")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureTargetExists(ctx, p.TargetType, p.TargetID); err != nil {
		return nil, err
	}

	if err := s.PaymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.reconcile(ctx, p.TargetType, p.TargetID)
	return &dto.PaymentResponse{Payment: p}, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentResponse{Payment: p}, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, id string, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPaymentUpdate(p, req)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)
	if err := s.PaymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.reconcile(ctx, p.TargetType, p.TargetID)
	return &dto.PaymentResponse{Payment: p}, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id string) error {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.PaymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.reconcile(ctx, p.TargetType, p.TargetID)
	return nil
}

func (s *paymentService) ListPayments(ctx context.Context, filter *types.PaymentFilter) (*dto.ListPaymentsResponse, error) {
	if filter == nil {
		filter = &types.PaymentFilter{QueryFilter: &types.QueryFilter{}}
	}

	payments, err := s.PaymentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.PaymentRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, &dto.PaymentResponse{Payment: p})
	}

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *paymentService) ensureTargetExists(ctx context.Context, targetType types.PaymentTargetType, targetID string) error {
	switch targetType {
	case types.PaymentTargetTypeInvoice:
		_, err := s.InvoiceRepo.Get(ctx, targetID)
		return err
	case types.PaymentTargetTypeTruckHiringNote:
		_, err := s.TruckHiringNoteRepo.Get(ctx, targetID)
		return err
	default:
		return ierr.NewError("unknown payment target type").
			WithHintf("Cannot record a payment against target type %s", targetType).
			Mark(ierr.ErrValidation)
	}
}

func (s *paymentService) reconcile(ctx context.Context, targetType types.PaymentTargetType, targetID string) {
	if err := s.reconciliationService.ReconcileTarget(ctx, targetType, targetID); err != nil {
		s.Logger.Errorf("failed to reconcile %s %s after payment mutation: %v", targetType, targetID, err)
	}
}

func applyPaymentUpdate(p *payment.Payment, req *dto.UpdatePaymentRequest) {
	if req.Amount != nil {
		p.Amount = *req.Amount
	}
	if req.Date != nil {
		p.Date = *req.Date
	}
	if req.Mode != nil {
		p.Mode = *req.Mode
	}
	if req.ReferenceNumber != nil {
		p.ReferenceNumber = *req.ReferenceNumber
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
}
