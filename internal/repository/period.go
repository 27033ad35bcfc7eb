package repository

import (
	"context"
	"database/sql"

	"github.com/faturo/faturo/internal/domain/period"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/logger"
	"github.com/faturo/faturo/internal/postgres"
	"github.com/faturo/faturo/internal/types"
)

type periodRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

const periodColumns = `
	id, contract_id, period_start, period_end, bill_date, period_status,
	is_standalone, order_number, amount_planned, amount_billed, payment_method,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *periodRepository) Get(ctx context.Context, id string) (*period.BillingPeriod, error) {
	query := `SELECT` + periodColumns + `
		FROM billing_periods
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	var p period.BillingPeriod
	err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("billing period not found").
				WithHint("Billing period not found").
				WithReportableDetails(map[string]any{
					"period_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get billing period").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}
