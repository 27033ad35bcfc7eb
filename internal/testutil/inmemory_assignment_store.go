package testutil

import (
	"context"
	"sync"

	"github.com/faturo/faturo/internal/domain/assignment"
	"github.com/faturo/faturo/internal/types"
	"github.com/samber/lo"
)

// InMemoryAssignmentStore implements assignment.Repository
type InMemoryAssignmentStore struct {
	*InMemoryStore[*assignment.ContractLineAssignment]

	mu         sync.Mutex
	serviceErr error
	productErr error
}

// NewInMemoryAssignmentStore creates a new in-memory assignment store
func NewInMemoryAssignmentStore() *InMemoryAssignmentStore {
	return &InMemoryAssignmentStore{
		InMemoryStore: NewInMemoryStore[*assignment.ContractLineAssignment](),
	}
}

// FailServices makes ListActiveServices fail with err.
func (s *InMemoryAssignmentStore) FailServices(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serviceErr = err
}

// FailProducts makes ListActiveProducts fail with err.
func (s *InMemoryAssignmentStore) FailProducts(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productErr = err
}

func copyAssignment(a *assignment.ContractLineAssignment) *assignment.ContractLineAssignment {
	if a == nil {
		return nil
	}
	out := *a
	return &out
}

func (s *InMemoryAssignmentStore) Create(ctx context.Context, a *assignment.ContractLineAssignment) error {
	return s.InMemoryStore.Create(ctx, a.ID, copyAssignment(a))
}

func (s *InMemoryAssignmentStore) ListActiveServices(ctx context.Context, contractID string) ([]*assignment.ContractLineAssignment, error) {
	s.mu.Lock()
	err := s.serviceErr
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.listActive(ctx, contractID, types.LineOriginService)
}

func (s *InMemoryAssignmentStore) ListActiveProducts(ctx context.Context, contractID string) ([]*assignment.ContractLineAssignment, error) {
	s.mu.Lock()
	err := s.productErr
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.listActive(ctx, contractID, types.LineOriginProduct)
}

func (s *InMemoryAssignmentStore) listActive(ctx context.Context, contractID string, origin types.LineOrigin) ([]*assignment.ContractLineAssignment, error) {
	filterFn := func(ctx context.Context, a *assignment.ContractLineAssignment, _ interface{}) bool {
		return a.TenantID == types.GetTenantID(ctx) &&
			a.ContractID == contractID &&
			a.Origin == origin &&
			a.IsBillable()
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, assignmentSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(a *assignment.ContractLineAssignment, _ int) *assignment.ContractLineAssignment {
		return copyAssignment(a)
	}), nil
}

func assignmentSortFn(i, j *assignment.ContractLineAssignment) bool {
	return i.ID < j.ID
}
