package testutil

import (
	"context"
	"time"

	"github.com/faturo/faturo/internal/domain/snapshot"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/types"
	"github.com/samber/lo"
)

// InMemorySnapshotStore implements snapshot.Repository
type InMemorySnapshotStore struct {
	*InMemoryStore[*snapshot.BillingSnapshot]
}

// NewInMemorySnapshotStore creates a new in-memory billing snapshot store
func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{
		InMemoryStore: NewInMemoryStore[*snapshot.BillingSnapshot](),
	}
}

func copySnapshot(s *snapshot.BillingSnapshot) *snapshot.BillingSnapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.LineItems = make([]*snapshot.SnapshotLineItem, len(s.LineItems))
	for i, item := range s.LineItems {
		copied := *item
		out.LineItems[i] = &copied
	}
	return &out
}

func (s *InMemorySnapshotStore) Create(ctx context.Context, snap *snapshot.BillingSnapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	return s.InMemoryStore.Create(ctx, snap.ID, copySnapshot(snap))
}

func (s *InMemorySnapshotStore) GetByPeriodID(ctx context.Context, periodID string) (*snapshot.BillingSnapshot, error) {
	filterFn := func(ctx context.Context, snap *snapshot.BillingSnapshot, _ interface{}) bool {
		return snap.TenantID == types.GetTenantID(ctx) &&
			snap.PeriodID != nil && *snap.PeriodID == periodID
	}

	matches, err := s.InMemoryStore.List(ctx, nil, filterFn, snapshotSortFn)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ierr.NewError("snapshot not found").
			WithHint("No snapshot linked to this period").
			WithReportableDetails(map[string]any{
				"period_id": periodID,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copySnapshot(matches[0]), nil
}

func (s *InMemorySnapshotStore) FindByReference(ctx context.Context, contractID, referenceKey string, start, end time.Time) ([]*snapshot.BillingSnapshot, error) {
	filterFn := func(ctx context.Context, snap *snapshot.BillingSnapshot, _ interface{}) bool {
		if snap.TenantID != types.GetTenantID(ctx) {
			return false
		}
		if snap.ContractID != contractID || snap.ReferencePeriod != referenceKey {
			return false
		}
		// Overlapping or equal date bounds
		return !snap.ReferenceStartDate.After(end) && !snap.ReferenceEndDate.Before(start)
	}

	matches, err := s.InMemoryStore.List(ctx, nil, filterFn, snapshotSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(matches, func(snap *snapshot.BillingSnapshot, _ int) *snapshot.BillingSnapshot {
		return copySnapshot(snap)
	}), nil
}

// snapshotSortFn orders by creation descending so the most recent wins
func snapshotSortFn(i, j *snapshot.BillingSnapshot) bool {
	return i.CreatedAt.After(j.CreatedAt)
}
