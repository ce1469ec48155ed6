package testutil

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nandi-devi/tms-app/internal/domain/truckhiringnote"
	"github.com/nandi-devi/tms-app/internal/types"
)

// InMemoryTruckHiringNoteStore implements truckhiringnote.Repository
type InMemoryTruckHiringNoteStore struct {
	*InMemoryStore[*truckhiringnote.TruckHiringNote]
}

// NewInMemoryTruckHiringNoteStore creates a new in-memory truck hiring note store
func NewInMemoryTruckHiringNoteStore() *InMemoryTruckHiringNoteStore {
	return &InMemoryTruckHiringNoteStore{
		InMemoryStore: NewInMemoryStore[*truckhiringnote.TruckHiringNote](),
	}
}

func copyTruckHiringNote(thn *truckhiringnote.TruckHiringNote) *truckhiringnote.TruckHiringNote {
	if thn == nil {
		return nil
	}
	out := *thn
	return &out
}

func (s *InMemoryTruckHiringNoteStore) Create(ctx context.Context, thn *truckhiringnote.TruckHiringNote) error {
	return s.InMemoryStore.Create(ctx, thn.ID, copyTruckHiringNote(thn))
}

func (s *InMemoryTruckHiringNoteStore) Get(ctx context.Context, id string) (*truckhiringnote.TruckHiringNote, error) {
	thn, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyTruckHiringNote(thn), nil
}

func (s *InMemoryTruckHiringNoteStore) Update(ctx context.Context, thn *truckhiringnote.TruckHiringNote) error {
	return s.InMemoryStore.Update(ctx, thn.ID, copyTruckHiringNote(thn))
}

func (s *InMemoryTruckHiringNoteStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryTruckHiringNoteStore) UpdateFinancials(ctx context.Context, id string, paid, balance decimal.Decimal, status types.PaymentStatus) error {
	thn, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return err
	}
	updated := copyTruckHiringNote(thn)
	updated.PaidAmount = paid
	updated.BalanceAmount = balance
	updated.Status = status
	return s.InMemoryStore.Update(ctx, id, updated)
}

func truckHiringNoteFilterFn(ctx context.Context, thn *truckhiringnote.TruckHiringNote, filter interface{}) bool {
	f, ok := filter.(*types.TruckHiringNoteFilter)
	if !ok || f == nil {
		return true
	}
	if f.Status != nil && thn.Status != *f.Status {
		return false
	}
	return true
}

func (s *InMemoryTruckHiringNoteStore) List(ctx context.Context, filter *types.TruckHiringNoteFilter) ([]*truckhiringnote.TruckHiringNote, error) {
	items, err := s.InMemoryStore.List(ctx, filter, truckHiringNoteFilterFn, func(i, j *truckhiringnote.TruckHiringNote) bool {
		return i.Number > j.Number
	})
	if err != nil {
		return nil, err
	}
	out := make([]*truckhiringnote.TruckHiringNote, 0, len(items))
	for _, thn := range paginate(items, filter.GetLimit(), filter.GetOffset()) {
		out = append(out, copyTruckHiringNote(thn))
	}
	return out, nil
}

func (s *InMemoryTruckHiringNoteStore) Count(ctx context.Context, filter *types.TruckHiringNoteFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, truckHiringNoteFilterFn)
}

func (s *InMemoryTruckHiringNoteStore) DeleteAll(ctx context.Context) error {
	s.Clear()
	return nil
}
