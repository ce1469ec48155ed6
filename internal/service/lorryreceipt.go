package service

import (
	"context"
	"time"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/lorryreceipt"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// LorryReceiptService manages the consignment notes that anchor the
// billing flow
type LorryReceiptService interface {
	CreateLorryReceipt(ctx context.Context, req *dto.CreateLorryReceiptRequest) (*dto.LorryReceiptResponse, error)
	GetLorryReceipt(ctx context.Context, id string) (*dto.LorryReceiptResponse, error)
	UpdateLorryReceipt(ctx context.Context, id string, req *dto.UpdateLorryReceiptRequest) (*dto.LorryReceiptResponse, error)
	UpdateLorryReceiptStatus(ctx context.Context, id string, req *dto.UpdateLorryReceiptStatusRequest) (*dto.LorryReceiptResponse, error)
	DeleteLorryReceipt(ctx context.Context, id string) error
	ListLorryReceipts(ctx context.Context, filter *types.LorryReceiptFilter) (*dto.ListLorryReceiptsResponse, error)
}

type lorryReceiptService struct {
	ServiceParams
	numberingService NumberingService
}

func NewLorryReceiptService(params ServiceParams, numberingService NumberingService) LorryReceiptService {
	return &lorryReceiptService{
		ServiceParams:    params,
		numberingService: numberingService,
	}
}

func (s *lorryReceiptService) CreateLorryReceipt(ctx context.Context, req *dto.CreateLorryReceiptRequest) (*dto.LorryReceiptResponse, error) {
	lr := req.ToLorryReceipt(ctx)
	if err := lr.Validate(); err != nil {
		return nil, err
	}

	// Referenced parties and vehicle must exist before a number is
	// consumed; allocation is deliberately last so a rejected request
	// never burns a number
	if _, err := s.CustomerRepo.Get(ctx, lr.ConsignorID); err != nil {
		return nil, err
	}
	if _, err := s.CustomerRepo.Get(ctx, lr.ConsigneeID); err != nil {
		return nil, err
	}
	if _, err := s.VehicleRepo.Get(ctx, lr.VehicleID); err != nil {
		return nil, err
	}

	n, err := s.numberingService.ResolveNumber(ctx, types.DocumentTypeLorryReceipt, req.Number)
	if err != nil {
		return nil, err
	}
	lr.Number = n

	if err := s.LorryReceiptRepo.Create(ctx, lr); err != nil {
		return nil, err
	}
	return dto.NewLorryReceiptResponse(lr), nil
}

func (s *lorryReceiptService) GetLorryReceipt(ctx context.Context, id string) (*dto.LorryReceiptResponse, error) {
	lr, err := s.LorryReceiptRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewLorryReceiptResponse(lr), nil
}

func (s *lorryReceiptService) UpdateLorryReceipt(ctx context.Context, id string, req *dto.UpdateLorryReceiptRequest) (*dto.LorryReceiptResponse, error) {
	lr, err := s.LorryReceiptRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyLorryReceiptUpdate(lr, req)
	if err := lr.Validate(); err != nil {
		return nil, err
	}

	lr.UpdatedAt = time.Now().UTC()
	lr.UpdatedBy = types.GetUserID(ctx)
	if err := s.LorryReceiptRepo.Update(ctx, lr); err != nil {
		return nil, err
	}
	return dto.NewLorryReceiptResponse(lr), nil
}

func (s *lorryReceiptService) UpdateLorryReceiptStatus(ctx context.Context, id string, req *dto.UpdateLorryReceiptStatusRequest) (*dto.LorryReceiptResponse, error) {
	if err := req.Status.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Unknown lorry receipt status").
			Mark(ierr.ErrValidation)
	}
	if !req.Status.IsManuallySettable() {
		return nil, ierr.NewError("status is not manually settable").
			WithHintf("Status %s is managed by the invoice lifecycle and cannot be set directly", req.Status).
			Mark(ierr.ErrInvalidOperation)
	}

	lr, err := s.LorryReceiptRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.LorryReceiptRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}
	lr.Status = req.Status
	return dto.NewLorryReceiptResponse(lr), nil
}

func (s *lorryReceiptService) DeleteLorryReceipt(ctx context.Context, id string) error {
	lr, err := s.LorryReceiptRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if lr.Status == types.LorryReceiptStatusInvoiced {
		return ierr.NewError("lorry receipt is invoiced").
			WithHintf("LR %d is billed by an invoice; remove it from the invoice first", lr.Number).
			Mark(ierr.ErrInvalidOperation)
	}

	return s.LorryReceiptRepo.Delete(ctx, id)
}

func (s *lorryReceiptService) ListLorryReceipts(ctx context.Context, filter *types.LorryReceiptFilter) (*dto.ListLorryReceiptsResponse, error) {
	if filter == nil {
		filter = &types.LorryReceiptFilter{QueryFilter: &types.QueryFilter{}}
	}

	lrs, err := s.LorryReceiptRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.LorryReceiptRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.LorryReceiptResponse, 0, len(lrs))
	for _, lr := range lrs {
		items = append(items, dto.NewLorryReceiptResponse(lr))
	}

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func applyLorryReceiptUpdate(lr *lorryreceipt.LorryReceipt, req *dto.UpdateLorryReceiptRequest) {
	if req.Date != nil {
		lr.Date = *req.Date
	}
	if req.ConsignorID != nil {
		lr.ConsignorID = *req.ConsignorID
	}
	if req.ConsigneeID != nil {
		lr.ConsigneeID = *req.ConsigneeID
	}
	if req.VehicleID != nil {
		lr.VehicleID = *req.VehicleID
	}
	if req.Origin != nil {
		lr.Origin = *req.Origin
	}
	if req.Destination != nil {
		lr.Destination = *req.Destination
	}
	if req.Packages != nil {
		lr.Packages = *req.Packages
	}
	if req.Description != nil {
		lr.Description = *req.Description
	}
	if req.ActualWeight != nil {
		lr.ActualWeight = *req.ActualWeight
	}
	if req.ChargedWeight != nil {
		lr.ChargedWeight = *req.ChargedWeight
	}
	if req.FreightCharge != nil {
		lr.FreightCharge = *req.FreightCharge
	}
	if req.HamaliCharge != nil {
		lr.HamaliCharge = *req.HamaliCharge
	}
	if req.OtherCharges != nil {
		lr.OtherCharges = *req.OtherCharges
	}
	if req.FreightType != nil {
		lr.FreightType = *req.FreightType
	}
}
