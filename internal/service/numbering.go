package service

import (
	"context"
	"time"

	"github.com/nandi-devi/tms-app/internal/api/dto"
	"github.com/nandi-devi/tms-app/internal/domain/numbering"
	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// NumberingService issues gapless document numbers and manages the
// numbering settings.
//
// Allocation never reserves: a number is issued exactly when the
// underlying atomic statement commits, so every issued number is used
// and no number is issued twice. The happy path is a single round trip.
type NumberingService interface {
	// AllocateNumber issues the next number for the document type. With
	// a configured range it draws from the range window; without one it
	// falls back to the legacy counter. An exhausted range fails with
	// ErrSequenceExhausted unless the range allows outside allocation,
	// in which case the legacy counter takes over.
	AllocateNumber(ctx context.Context, documentType types.DocumentType) (int64, error)

	// ResolveNumber returns the number a new document should carry:
	// the manual number when one is supplied and permitted, otherwise a
	// fresh allocation
	ResolveNumber(ctx context.Context, documentType types.DocumentType, manual *int64) (int64, error)

	UpsertRange(ctx context.Context, req *dto.UpsertNumberingRangeRequest) (*dto.NumberingRangeResponse, error)
	GetRange(ctx context.Context, documentType types.DocumentType) (*dto.NumberingRangeResponse, error)
	ListRanges(ctx context.Context) (*dto.ListNumberingRangesResponse, error)
	ListCounters(ctx context.Context) (*dto.ListSequenceCountersResponse, error)
}

type numberingService struct {
	ServiceParams
}

func NewNumberingService(params ServiceParams) NumberingService {
	return &numberingService{
		ServiceParams: params,
	}
}

func (s *numberingService) AllocateNumber(ctx context.Context, documentType types.DocumentType) (int64, error) {
	n, err := s.NumberingRepo.AllocateNext(ctx, documentType)
	if err == nil {
		return n, nil
	}

	if ierr.IsNotFound(err) {
		// No range configured; legacy counter mode
		return s.NumberingRepo.Increment(ctx, documentType.SequenceName())
	}

	if ierr.IsSequenceExhausted(err) {
		r, getErr := s.NumberingRepo.GetRange(ctx, documentType)
		if getErr != nil {
			return 0, getErr
		}
		if r.AllowOutsideRange {
			s.Logger.Infof("numbering range for %s exhausted, falling back to legacy counter", documentType)
			return s.NumberingRepo.Increment(ctx, documentType.SequenceName())
		}
		return 0, err
	}

	return 0, err
}

func (s *numberingService) ResolveNumber(ctx context.Context, documentType types.DocumentType, manual *int64) (int64, error) {
	if manual == nil {
		return s.AllocateNumber(ctx, documentType)
	}

	if *manual <= 0 {
		return 0, ierr.NewError("invalid manual number").
			WithHint("Document number must be positive").
			Mark(ierr.ErrValidation)
	}

	r, err := s.NumberingRepo.GetRange(ctx, documentType)
	if err != nil {
		if ierr.IsNotFound(err) {
			// Legacy counter mode always accepts manual numbers
			return *manual, nil
		}
		return 0, err
	}

	if !r.AllowManualEntry {
		return 0, ierr.NewError("manual number not allowed").
			WithHintf("Manual entry is disabled for %s; enable it in Settings or omit the number", documentType).
			Mark(ierr.ErrInvalidOperation)
	}
	return *manual, nil
}

func (s *numberingService) UpsertRange(ctx context.Context, req *dto.UpsertNumberingRangeRequest) (*dto.NumberingRangeResponse, error) {
	r := &numbering.NumberingRange{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NUMBERING_RANGE),
		DocumentType:      req.DocumentType,
		Prefix:            req.Prefix,
		StartNumber:       req.StartNumber,
		EndNumber:         req.EndNumber,
		CurrentNumber:     req.StartNumber,
		AllowManualEntry:  req.AllowManualEntry,
		AllowOutsideRange: req.AllowOutsideRange,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}

	existing, err := s.NumberingRepo.GetRange(ctx, req.DocumentType)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		// Reconfiguring an existing range keeps its identity and its
		// allocation progress, so already-issued numbers are never
		// reissued. Progress resets to the new start only when it falls
		// before the window, or past its end with no counter fallback to
		// absorb the overflow.
		r.ID = existing.ID
		r.CreatedAt = existing.CreatedAt
		r.CreatedBy = existing.CreatedBy
		r.CurrentNumber = existing.CurrentNumber
		if existing.CurrentNumber < req.StartNumber ||
			(existing.CurrentNumber > req.EndNumber && !req.AllowOutsideRange) {
			r.CurrentNumber = req.StartNumber
		}
		r.UpdatedAt = time.Now().UTC()
		r.UpdatedBy = types.GetUserID(ctx)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := s.NumberingRepo.UpsertRange(ctx, r); err != nil {
		return nil, err
	}
	return dto.NewNumberingRangeResponse(r), nil
}

func (s *numberingService) GetRange(ctx context.Context, documentType types.DocumentType) (*dto.NumberingRangeResponse, error) {
	if err := documentType.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Unknown document type").
			Mark(ierr.ErrValidation)
	}
	r, err := s.NumberingRepo.GetRange(ctx, documentType)
	if err != nil {
		return nil, err
	}
	return dto.NewNumberingRangeResponse(r), nil
}

func (s *numberingService) ListRanges(ctx context.Context) (*dto.ListNumberingRangesResponse, error) {
	ranges, err := s.NumberingRepo.ListRanges(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ListNumberingRangesResponse{
		Items: make([]*dto.NumberingRangeResponse, 0, len(ranges)),
	}
	for _, r := range ranges {
		resp.Items = append(resp.Items, dto.NewNumberingRangeResponse(r))
	}
	return resp, nil
}

func (s *numberingService) ListCounters(ctx context.Context) (*dto.ListSequenceCountersResponse, error) {
	counters, err := s.NumberingRepo.ListCounters(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ListSequenceCountersResponse{
		Items: make([]*dto.SequenceCounterResponse, 0, len(counters)),
	}
	for _, c := range counters {
		resp.Items = append(resp.Items, &dto.SequenceCounterResponse{SequenceCounter: c})
	}
	return resp, nil
}
