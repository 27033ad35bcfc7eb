package testutil

import (
	"context"
	"sync"

	"github.com/faturo/faturo/internal/domain/period"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/types"
)

// InMemoryPeriodStore implements period.Repository
type InMemoryPeriodStore struct {
	*InMemoryStore[*period.BillingPeriod]

	mu             sync.Mutex
	transientFails int
	transientErr   error
}

// NewInMemoryPeriodStore creates a new in-memory billing period store
func NewInMemoryPeriodStore() *InMemoryPeriodStore {
	return &InMemoryPeriodStore{
		InMemoryStore: NewInMemoryStore[*period.BillingPeriod](),
	}
}

// FailGetTimes makes the next n Get calls fail with err before recovering.
// Used to exercise the resolver's transient-failure retry loop.
func (s *InMemoryPeriodStore) FailGetTimes(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transientFails = n
	s.transientErr = err
}

func copyPeriod(p *period.BillingPeriod) *period.BillingPeriod {
	if p == nil {
		return nil
	}
	out := *p
	return &out
}

func (s *InMemoryPeriodStore) Create(ctx context.Context, p *period.BillingPeriod) error {
	return s.InMemoryStore.Create(ctx, p.ID, copyPeriod(p))
}

func (s *InMemoryPeriodStore) Get(ctx context.Context, id string) (*period.BillingPeriod, error) {
	s.mu.Lock()
	if s.transientFails > 0 {
		s.transientFails--
		err := s.transientErr
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("billing period not found").
			WithHint("Billing period not found").
			WithReportableDetails(map[string]any{
				"period_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyPeriod(p), nil
}
