package service

import (
	"context"
	"time"

	"github.com/faturo/faturo/internal/domain/snapshot"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/types"
)

// SnapshotReaderService loads the immutable historical record of a billed
// period. A missing snapshot is not an error here: periods in a transitional
// state (marked BILLED before the snapshot row lands) fall back to projection.
type SnapshotReaderService interface {
	LoadSnapshot(ctx context.Context, contractID, periodID string, periodStart, periodEnd time.Time) (*snapshot.BillingSnapshot, error)
}

type snapshotReaderService struct {
	ServiceParams
}

func NewSnapshotReaderService(params ServiceParams) SnapshotReaderService {
	return &snapshotReaderService{
		ServiceParams: params,
	}
}

// LoadSnapshot first tries the explicit period foreign key, then falls back to
// the business-key match (contract + display month + date range) kept for
// historical rows created before the foreign key existed. Returns (nil, nil)
// when no snapshot exists.
func (s *snapshotReaderService) LoadSnapshot(ctx context.Context, contractID, periodID string, periodStart, periodEnd time.Time) (*snapshot.BillingSnapshot, error) {
	snap, err := s.SnapshotRepo.GetByPeriodID(ctx, periodID)
	if err == nil {
		return snap, nil
	}
	if !ierr.IsNotFound(err) {
		return nil, err
	}

	referenceKey := types.ReferencePeriodKey(periodStart)
	matches, err := s.SnapshotRepo.FindByReference(ctx, contractID, referenceKey, periodStart, periodEnd)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}

	// Exactly one snapshot should exist per contract and reference period.
	// More than one is a data-quality signal, not a supported state: take the
	// most recently created and log the ambiguity.
	if len(matches) > 1 {
		s.Logger.Warnw("multiple snapshots matched one reference period, using most recent",
			"contract_id", contractID,
			"reference_period", referenceKey,
			"matches", len(matches),
		)
	}
	return matches[0], nil
}
