package period

import (
	"context"
)

// Repository defines the interface for billing period persistence operations
type Repository interface {
	// Get retrieves a billing period by ID, scoped to the tenant in ctx.
	// Returns an error marked ierr.ErrNotFound when no row matches.
	Get(ctx context.Context, id string) (*BillingPeriod, error)
}
