package contract

import (
	"context"
	"time"

	"github.com/faturo/faturo/internal/types"
)

// Repository defines the interface for contract read operations.
// All queries are scoped to the tenant carried in ctx.
type Repository interface {
	// Get retrieves a contract by ID
	Get(ctx context.Context, id string) (*Contract, error)

	// ListByBillingDay retrieves contracts in the given states whose billing
	// day matches the predicate. When beforeDay is true the match is
	// billing_day < day (this month's billing date has passed), otherwise
	// billing_day == day. Contracts whose final date is on or before notExpiredAfter
	// are excluded.
	ListByBillingDay(ctx context.Context, day int, beforeDay bool, states []types.ContractStatus, notExpiredAfter time.Time) ([]*Contract, error)

	// ListWithChargesInMonth retrieves contracts that have at least one charge
	// record created inside the window, one row per contract.
	ListWithChargesInMonth(ctx context.Context, window types.MonthWindow) ([]*Contract, error)

	// ListPastFinalDate retrieves contracts in the given states whose final
	// date is on or before asOf.
	ListPastFinalDate(ctx context.Context, asOf time.Time, states []types.ContractStatus) ([]*Contract, error)
}
