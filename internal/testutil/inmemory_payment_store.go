package testutil

import (
	"context"

	"github.com/nandi-devi/tms-app/internal/domain/payment"
	"github.com/nandi-devi/tms-app/internal/types"
)

// InMemoryPaymentStore implements payment.Repository
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.Payment]
}

// NewInMemoryPaymentStore creates a new in-memory payment store
func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*payment.Payment](),
	}
}

func copyPayment(p *payment.Payment) *payment.Payment {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}

func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	return s.InMemoryStore.Create(ctx, p.ID, copyPayment(p))
}

func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.Payment, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyPayment(p), nil
}

func (s *InMemoryPaymentStore) Update(ctx context.Context, p *payment.Payment) error {
	return s.InMemoryStore.Update(ctx, p.ID, copyPayment(p))
}

func (s *InMemoryPaymentStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func paymentFilterFn(ctx context.Context, p *payment.Payment, filter interface{}) bool {
	f, ok := filter.(*types.PaymentFilter)
	if !ok || f == nil {
		return true
	}
	if f.TargetType != nil && p.TargetType != *f.TargetType {
		return false
	}
	if f.TargetID != nil && p.TargetID != *f.TargetID {
		return false
	}
	if f.Mode != nil && p.Mode != *f.Mode {
		return false
	}
	return true
}

func (s *InMemoryPaymentStore) List(ctx context.Context, filter *types.PaymentFilter) ([]*payment.Payment, error) {
	items, err := s.InMemoryStore.List(ctx, filter, paymentFilterFn, func(i, j *payment.Payment) bool {
		return i.Date.After(j.Date)
	})
	if err != nil {
		return nil, err
	}
	out := make([]*payment.Payment, 0, len(items))
	for _, p := range paginate(items, filter.GetLimit(), filter.GetOffset()) {
		out = append(out, copyPayment(p))
	}
	return out, nil
}

func (s *InMemoryPaymentStore) Count(ctx context.Context, filter *types.PaymentFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, paymentFilterFn)
}

func (s *InMemoryPaymentStore) ListByTarget(ctx context.Context, targetType types.PaymentTargetType, targetID string) ([]*payment.Payment, error) {
	items, err := s.InMemoryStore.List(ctx, nil, func(ctx context.Context, p *payment.Payment, _ interface{}) bool {
		return p.TargetType == targetType && p.TargetID == targetID
	}, func(i, j *payment.Payment) bool {
		return i.Date.Before(j.Date)
	})
	if err != nil {
		return nil, err
	}
	out := make([]*payment.Payment, 0, len(items))
	for _, p := range items {
		out = append(out, copyPayment(p))
	}
	return out, nil
}

func (s *InMemoryPaymentStore) DeleteAll(ctx context.Context) error {
	s.Clear()
	return nil
}
