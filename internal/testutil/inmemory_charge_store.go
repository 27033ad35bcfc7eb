package testutil

import (
	"context"

	"github.com/faturo/faturo/internal/domain/charge"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/types"
)

// InMemoryChargeStore implements charge.Repository
type InMemoryChargeStore struct {
	*InMemoryStore[*charge.ChargeRecord]
}

// NewInMemoryChargeStore creates a new in-memory charge record store
func NewInMemoryChargeStore() *InMemoryChargeStore {
	return &InMemoryChargeStore{
		InMemoryStore: NewInMemoryStore[*charge.ChargeRecord](),
	}
}

func copyCharge(c *charge.ChargeRecord) *charge.ChargeRecord {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

func (s *InMemoryChargeStore) Create(ctx context.Context, c *charge.ChargeRecord) error {
	return s.InMemoryStore.Create(ctx, c.ID, copyCharge(c))
}

func (s *InMemoryChargeStore) ExistsInWindow(ctx context.Context, contractID string, window types.MonthWindow) (bool, error) {
	filterFn := func(ctx context.Context, c *charge.ChargeRecord, _ interface{}) bool {
		return c.TenantID == types.GetTenantID(ctx) &&
			c.ContractID == contractID &&
			window.Contains(c.CreatedAt)
	}

	count, err := s.InMemoryStore.Count(ctx, nil, filterFn)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *InMemoryChargeStore) UpdateStatus(ctx context.Context, chargeID string, status types.ChargeStatus) error {
	c, err := s.InMemoryStore.Get(ctx, chargeID)
	if err != nil || c.TenantID != types.GetTenantID(ctx) {
		return ierr.NewError("charge not found").
			WithHint("Charge not found").
			WithReportableDetails(map[string]any{
				"charge_id": chargeID,
			}).
			Mark(ierr.ErrNotFound)
	}
	updated := copyCharge(c)
	updated.ChargeStatus = status
	return s.InMemoryStore.Update(ctx, chargeID, updated)
}
