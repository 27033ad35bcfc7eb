package charge

import (
	"context"

	"github.com/faturo/faturo/internal/types"
)

// Repository defines the interface for charge record operations
type Repository interface {
	// Create persists a charge record
	Create(ctx context.Context, c *ChargeRecord) error

	// ExistsInWindow reports whether the contract has at least one charge
	// record created inside the window.
	ExistsInWindow(ctx context.Context, contractID string, window types.MonthWindow) (bool, error)

	// UpdateStatus updates a charge's payment status
	UpdateStatus(ctx context.Context, chargeID string, status types.ChargeStatus) error
}
