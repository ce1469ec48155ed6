package testutil

import (
	"context"

	"github.com/samber/lo"

	"github.com/nandi-devi/tms-app/internal/domain/lorryreceipt"
	"github.com/nandi-devi/tms-app/internal/types"
)

// InMemoryLorryReceiptStore implements lorryreceipt.Repository
type InMemoryLorryReceiptStore struct {
	*InMemoryStore[*lorryreceipt.LorryReceipt]
}

// NewInMemoryLorryReceiptStore creates a new in-memory lorry receipt store
func NewInMemoryLorryReceiptStore() *InMemoryLorryReceiptStore {
	return &InMemoryLorryReceiptStore{
		InMemoryStore: NewInMemoryStore[*lorryreceipt.LorryReceipt](),
	}
}

func copyLorryReceipt(lr *lorryreceipt.LorryReceipt) *lorryreceipt.LorryReceipt {
	if lr == nil {
		return nil
	}
	out := *lr
	return &out
}

func (s *InMemoryLorryReceiptStore) Create(ctx context.Context, lr *lorryreceipt.LorryReceipt) error {
	return s.InMemoryStore.Create(ctx, lr.ID, copyLorryReceipt(lr))
}

func (s *InMemoryLorryReceiptStore) Get(ctx context.Context, id string) (*lorryreceipt.LorryReceipt, error) {
	lr, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyLorryReceipt(lr), nil
}

func (s *InMemoryLorryReceiptStore) GetByIDs(ctx context.Context, ids []string) ([]*lorryreceipt.LorryReceipt, error) {
	idSet := lo.SliceToMap(ids, func(id string) (string, struct{}) { return id, struct{}{} })
	items, err := s.InMemoryStore.List(ctx, nil, func(ctx context.Context, lr *lorryreceipt.LorryReceipt, _ interface{}) bool {
		_, ok := idSet[lr.ID]
		return ok
	}, func(i, j *lorryreceipt.LorryReceipt) bool {
		return i.Number < j.Number
	})
	if err != nil {
		return nil, err
	}
	out := make([]*lorryreceipt.LorryReceipt, 0, len(items))
	for _, lr := range items {
		out = append(out, copyLorryReceipt(lr))
	}
	return out, nil
}

func (s *InMemoryLorryReceiptStore) Update(ctx context.Context, lr *lorryreceipt.LorryReceipt) error {
	return s.InMemoryStore.Update(ctx, lr.ID, copyLorryReceipt(lr))
}

func (s *InMemoryLorryReceiptStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryLorryReceiptStore) UpdateStatus(ctx context.Context, id string, status types.LorryReceiptStatus) error {
	lr, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return err
	}
	updated := copyLorryReceipt(lr)
	updated.Status = status
	return s.InMemoryStore.Update(ctx, id, updated)
}

func (s *InMemoryLorryReceiptStore) UpdateStatusBulk(ctx context.Context, ids []string, status types.LorryReceiptStatus) error {
	for _, id := range ids {
		if err := s.UpdateStatus(ctx, id, status); err != nil {
			return err
		}
	}
	return nil
}

func lorryReceiptFilterFn(ctx context.Context, lr *lorryreceipt.LorryReceipt, filter interface{}) bool {
	f, ok := filter.(*types.LorryReceiptFilter)
	if !ok || f == nil {
		return true
	}
	if f.Status != nil && lr.Status != *f.Status {
		return false
	}
	if f.ConsignorID != nil && lr.ConsignorID != *f.ConsignorID {
		return false
	}
	if f.ConsigneeID != nil && lr.ConsigneeID != *f.ConsigneeID {
		return false
	}
	if f.VehicleID != nil && lr.VehicleID != *f.VehicleID {
		return false
	}
	return true
}

func (s *InMemoryLorryReceiptStore) List(ctx context.Context, filter *types.LorryReceiptFilter) ([]*lorryreceipt.LorryReceipt, error) {
	items, err := s.InMemoryStore.List(ctx, filter, lorryReceiptFilterFn, func(i, j *lorryreceipt.LorryReceipt) bool {
		return i.Number > j.Number
	})
	if err != nil {
		return nil, err
	}
	out := make([]*lorryreceipt.LorryReceipt, 0, len(items))
	for _, lr := range paginate(items, filter.GetLimit(), filter.GetOffset()) {
		out = append(out, copyLorryReceipt(lr))
	}
	return out, nil
}

func (s *InMemoryLorryReceiptStore) Count(ctx context.Context, filter *types.LorryReceiptFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, lorryReceiptFilterFn)
}

func (s *InMemoryLorryReceiptStore) DeleteAll(ctx context.Context) error {
	s.Clear()
	return nil
}
