package service

import (
	"context"

	"github.com/samber/lo"

	ierr "github.com/nandi-devi/tms-app/internal/errors"
	"github.com/nandi-devi/tms-app/internal/types"
)

// LifecycleService owns the coordinator-driven lorry receipt states:
// attaching an LR to an invoice moves it to INVOICED, detaching reverts
// it to CREATED. No other code path writes these two states.
type LifecycleService interface {
	// AttachLorryReceipts verifies every LR exists and is not already
	// billed by another invoice, then moves them all to INVOICED
	AttachLorryReceipts(ctx context.Context, ids []string) error

	// DetachLorryReceipts reverts the LRs to CREATED
	DetachLorryReceipts(ctx context.Context, ids []string) error

	// SyncLorryReceipts transitions the set difference between the LRs
	// an invoice billed before and after an update: newly added ones are
	// attached, removed ones are detached
	SyncLorryReceipts(ctx context.Context, before, after []string) error
}

type lifecycleService struct {
	ServiceParams
}

func NewLifecycleService(params ServiceParams) LifecycleService {
	return &lifecycleService{
		ServiceParams: params,
	}
}

func (s *lifecycleService) AttachLorryReceipts(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	lrs, err := s.LorryReceiptRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	if len(lrs) != len(lo.Uniq(ids)) {
		foundIDs := make(map[string]struct{}, len(lrs))
		for _, lr := range lrs {
			foundIDs[lr.ID] = struct{}{}
		}
		missing := lo.Filter(lo.Uniq(ids), func(id string, _ int) bool {
			_, ok := foundIDs[id]
			return !ok
		})
		return ierr.NewError("lorry receipts not found").
			WithHintf("Lorry receipts do not exist: %v", missing).
			Mark(ierr.ErrNotFound)
	}

	for _, lr := range lrs {
		if lr.Status == types.LorryReceiptStatusInvoiced {
			return ierr.NewError("lorry receipt already invoiced").
				WithHintf("LR %d is already billed by another invoice", lr.Number).
				Mark(ierr.ErrInvalidOperation)
		}
	}

	return s.LorryReceiptRepo.UpdateStatusBulk(ctx, ids, types.LorryReceiptStatusInvoiced)
}

func (s *lifecycleService) DetachLorryReceipts(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.LorryReceiptRepo.UpdateStatusBulk(ctx, ids, types.LorryReceiptStatusCreated)
}

func (s *lifecycleService) SyncLorryReceipts(ctx context.Context, before, after []string) error {
	added, removed := lo.Difference(after, before)

	if err := s.AttachLorryReceipts(ctx, added); err != nil {
		return err
	}
	return s.DetachLorryReceipts(ctx, removed)
}
