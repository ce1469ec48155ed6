package service

import (
	"context"
	"time"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/truckhiringnote"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// TruckHiringNoteService manages the hired-truck expense documents
type TruckHiringNoteService interface {
	CreateTruckHiringNote(ctx context.Context, req *dto.CreateTruckHiringNoteRequest) (*dto.TruckHiringNoteResponse, error)
	GetTruckHiringNote(ctx context.Context, id string) (*dto.TruckHiringNoteResponse, error)
	UpdateTruckHiringNote(ctx context.Context, id string, req *dto.UpdateTruckHiringNoteRequest) (*dto.TruckHiringNoteResponse, error)
	DeleteTruckHiringNote(ctx context.Context, id string) error
	ListTruckHiringNotes(ctx context.Context, filter *types.TruckHiringNoteFilter) (*dto.ListTruckHiringNotesResponse, error)
}

type truckHiringNoteService struct {
	ServiceParams
	numberingService      NumberingService
	reconciliationService ReconciliationService
}

func NewTruckHiringNoteService(params ServiceParams, numberingService NumberingService, reconciliationService ReconciliationService) TruckHiringNoteService {
	return &truckHiringNoteService{
		ServiceParams:         params,
		numberingService:      numberingService,
		reconciliationService: reconciliationService,
	}
}

func (s *truckHiringNoteService) CreateTruckHiringNote(ctx context.Context, req *dto.CreateTruckHiringNoteRequest) (*dto.TruckHiringNoteResponse, error) {
	thn := req.ToTruckHiringNote(ctx)
	if err := thn.Validate(); err != nil {
		return nil, err
	}

	n, err := s.numberingService.ResolveNumber(ctx, types.DocumentTypeTruckHiringNote, req.Number)
	if err != nil {
		return nil, err
	}
	thn.Number = n

	if err := s.TruckHiringNoteRepo.Create(ctx, thn); err != nil {
		return nil, err
	}
	return &dto.TruckHiringNoteResponse{TruckHiringNote: thn}, nil
}

func (s *truckHiringNoteService) GetTruckHiringNote(ctx context.Context, id string) (*dto.TruckHiringNoteResponse, error) {
	thn, err := s.TruckHiringNoteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TruckHiringNoteResponse{TruckHiringNote: thn}, nil
}

func (s *truckHiringNoteService) UpdateTruckHiringNote(ctx context.Context, id string, req *dto.UpdateTruckHiringNoteRequest) (*dto.TruckHiringNoteResponse, error) {
	thn, err := s.TruckHiringNoteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	freightChanged := req.FreightAmount != nil && !req.FreightAmount.Equal(thn.FreightAmount)
	applyTruckHiringNoteUpdate(thn, req)
	if err := thn.Validate(); err != nil {
		return nil, err
	}

	thn.UpdatedAt = time.Now().UTC()
	thn.UpdatedBy = types.GetUserID(ctx)
	if err := s.TruckHiringNoteRepo.Update(ctx, thn); err != nil {
		return nil, err
	}

	// Moving the freight target changes the balance and possibly the
	// settlement status
	if freightChanged {
		if recErr := s.reconciliationService.ReconcileTruckHiringNote(ctx, id); recErr != nil {
			s.Logger.Errorf("failed to reconcile truck hiring note %s after update: %v", id, recErr)
		} else if fresh, getErr := s.TruckHiringNoteRepo.Get(ctx, id); getErr == nil {
			thn = fresh
		}
	}

	return &dto.TruckHiringNoteResponse{TruckHiringNote: thn}, nil
}

func (s *truckHiringNoteService) DeleteTruckHiringNote(ctx context.Context, id string) error {
	thn, err := s.TruckHiringNoteRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	payments, err := s.PaymentRepo.ListByTarget(ctx, types.PaymentTargetTypeTruckHiringNote, id)
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		return ierr.NewError("truck hiring note has payments").
			WithHintf("THN %d has %d payment(s) recorded against it; delete them first", thn.Number, len(payments)).
			Mark(ierr.ErrInvalidOperation)
	}

	return s.TruckHiringNoteRepo.Delete(ctx, id)
}

func (s *truckHiringNoteService) ListTruckHiringNotes(ctx context.Context, filter *types.TruckHiringNoteFilter) (*dto.ListTruckHiringNotesResponse, error) {
	if filter == nil {
		filter = &types.TruckHiringNoteFilter{QueryFilter: &types.QueryFilter{}}
	}

	thns, err := s.TruckHiringNoteRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	count, err := s.TruckHiringNoteRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.TruckHiringNoteResponse, 0, len(thns))
	for _, thn := range thns {
		items = append(items, &dto.TruckHiringNoteResponse{TruckHiringNote: thn})
	}

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func applyTruckHiringNoteUpdate(thn *truckhiringnote.TruckHiringNote, req *dto.UpdateTruckHiringNoteRequest) {
	if req.Date != nil {
		thn.Date = *req.Date
	}
	if req.TruckOwner != nil {
		thn.TruckOwner = *req.TruckOwner
	}
	if req.TruckNumber != nil {
		thn.TruckNumber = *req.TruckNumber
	}
	if req.Origin != nil {
		thn.Origin = *req.Origin
	}
	if req.Destination != nil {
		thn.Destination = *req.Destination
	}
	if req.FreightAmount != nil {
		thn.FreightAmount = *req.FreightAmount
	}
	if req.AdvanceAmount != nil {
		thn.AdvanceAmount = *req.AdvanceAmount
	}
}
