package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/faturo/faturo/internal/domain/contract"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/types"
	"github.com/samber/lo"
)

// InMemoryContractStore implements contract.Repository
type InMemoryContractStore struct {
	*InMemoryStore[*contract.Contract]
	charges *InMemoryChargeStore

	mu         sync.Mutex
	getErr     error
	bucketErrs map[string]error
}

// NewInMemoryContractStore creates a new in-memory contract store. The charge
// store is shared so ListWithChargesInMonth sees the same charge records the
// board's existence checks do.
func NewInMemoryContractStore(charges *InMemoryChargeStore) *InMemoryContractStore {
	return &InMemoryContractStore{
		InMemoryStore: NewInMemoryStore[*contract.Contract](),
		charges:       charges,
		bucketErrs:    make(map[string]error),
	}
}

// FailGet makes Get fail with err. Used to simulate a transient backend
// failure on the contract read.
func (s *InMemoryContractStore) FailGet(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
}

// FailList makes the named listing ("billing_day", "charges_in_month",
// "past_final_date") fail with err. Used to simulate a single broken bucket.
func (s *InMemoryContractStore) FailList(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bucketErrs[name] = err
}

func (s *InMemoryContractStore) listErr(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bucketErrs[name]
}

func copyContract(c *contract.Contract) *contract.Contract {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

func (s *InMemoryContractStore) Create(ctx context.Context, c *contract.Contract) error {
	return s.InMemoryStore.Create(ctx, c.ID, copyContract(c))
}

func (s *InMemoryContractStore) Get(ctx context.Context, id string) (*contract.Contract, error) {
	s.mu.Lock()
	if s.getErr != nil {
		err := s.getErr
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || c.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("contract not found").
			WithHint("Contract not found").
			WithReportableDetails(map[string]any{
				"contract_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyContract(c), nil
}

func (s *InMemoryContractStore) ListByBillingDay(ctx context.Context, day int, beforeDay bool, states []types.ContractStatus, notExpiredAfter time.Time) ([]*contract.Contract, error) {
	if err := s.listErr("billing_day"); err != nil {
		return nil, err
	}

	filterFn := func(ctx context.Context, c *contract.Contract, _ interface{}) bool {
		if c.TenantID != types.GetTenantID(ctx) {
			return false
		}
		if !lo.Contains(states, c.State) {
			return false
		}
		if c.IsExpiredAsOf(notExpiredAfter) {
			return false
		}
		if beforeDay {
			return c.BillingDay < day
		}
		return c.BillingDay == day
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, contractSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(c *contract.Contract, _ int) *contract.Contract {
		return copyContract(c)
	}), nil
}

func (s *InMemoryContractStore) ListWithChargesInMonth(ctx context.Context, window types.MonthWindow) ([]*contract.Contract, error) {
	if err := s.listErr("charges_in_month"); err != nil {
		return nil, err
	}

	filterFn := func(ctx context.Context, c *contract.Contract, _ interface{}) bool {
		if c.TenantID != types.GetTenantID(ctx) {
			return false
		}
		exists, err := s.charges.ExistsInWindow(ctx, c.ID, window)
		return err == nil && exists
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, contractSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(c *contract.Contract, _ int) *contract.Contract {
		return copyContract(c)
	}), nil
}

func (s *InMemoryContractStore) ListPastFinalDate(ctx context.Context, asOf time.Time, states []types.ContractStatus) ([]*contract.Contract, error) {
	if err := s.listErr("past_final_date"); err != nil {
		return nil, err
	}

	filterFn := func(ctx context.Context, c *contract.Contract, _ interface{}) bool {
		if c.TenantID != types.GetTenantID(ctx) {
			return false
		}
		if !lo.Contains(states, c.State) {
			return false
		}
		return c.FinalDate != nil && !c.FinalDate.After(asOf)
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, contractSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(c *contract.Contract, _ int) *contract.Contract {
		return copyContract(c)
	}), nil
}

func contractSortFn(i, j *contract.Contract) bool {
	return i.ID < j.ID
}
