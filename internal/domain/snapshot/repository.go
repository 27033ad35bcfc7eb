package snapshot

import (
	"context"
	"time"
)

// Repository defines the interface for billing snapshot persistence operations.
// Snapshots are write-once: Create is the only mutation.
type Repository interface {
	// Create persists a snapshot with its line items
	Create(ctx context.Context, snap *BillingSnapshot) error

	// GetByPeriodID retrieves the snapshot linked to a period via the explicit
	// foreign key, with line items loaded. Returns an error marked
	// ierr.ErrNotFound when no row matches.
	GetByPeriodID(ctx context.Context, periodID string) (*BillingSnapshot, error)

	// FindByReference retrieves snapshots for a contract matching the display
	// month key and overlapping the date bounds, line items loaded, ordered by
	// creation descending. Used as fallback for historical rows without a
	// period foreign key.
	FindByReference(ctx context.Context, contractID, referenceKey string, start, end time.Time) ([]*BillingSnapshot, error)
}
