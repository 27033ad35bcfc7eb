package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/faturo/faturo/internal/domain/contract"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/logger"
	"github.com/faturo/faturo/internal/postgres"
	"github.com/faturo/faturo/internal/types"
	"github.com/lib/pq"
)

type contractRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

const contractColumns = `
	id, customer_id, description, billing_day, state, final_date, installments,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *contractRepository) Get(ctx context.Context, id string) (*contract.Contract, error) {
	query := `SELECT` + contractColumns + `
		FROM contracts
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	var c contract.Contract
	err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("contract not found").
				WithHint("Contract not found").
				WithReportableDetails(map[string]any{
					"contract_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get contract").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *contractRepository) ListByBillingDay(ctx context.Context, day int, beforeDay bool, states []types.ContractStatus, notExpiredAfter time.Time) ([]*contract.Contract, error) {
	dayPredicate := `billing_day = $2`
	if beforeDay {
		dayPredicate = `billing_day < $2`
	}

	query := `SELECT` + contractColumns + `
		FROM contracts
		WHERE tenant_id = $1 AND ` + dayPredicate + `
		  AND state = ANY($3)
		  AND (final_date IS NULL OR final_date > $4)
		  AND status != $5
		ORDER BY billing_day, id`

	var contracts []*contract.Contract
	err := r.db.GetQuerier(ctx).SelectContext(ctx, &contracts, query,
		types.GetTenantID(ctx), day, pq.Array(statesToStrings(states)), notExpiredAfter, types.StatusDeleted)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list contracts by billing day").
			Mark(ierr.ErrDatabase)
	}
	return contracts, nil
}

func (r *contractRepository) ListWithChargesInMonth(ctx context.Context, window types.MonthWindow) ([]*contract.Contract, error) {
	query := `SELECT DISTINCT ON (c.id)` + prefixedContractColumns("c") + `
		FROM contracts c
		JOIN charge_records ch ON ch.contract_id = c.id AND ch.tenant_id = c.tenant_id
		WHERE c.tenant_id = $1
		  AND ch.created_at >= $2 AND ch.created_at < $3
		  AND c.status != $4 AND ch.status != $4
		ORDER BY c.id`

	var contracts []*contract.Contract
	err := r.db.GetQuerier(ctx).SelectContext(ctx, &contracts, query,
		types.GetTenantID(ctx), window.Start, window.End, types.StatusDeleted)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list contracts with charges in month").
			Mark(ierr.ErrDatabase)
	}
	return contracts, nil
}

func (r *contractRepository) ListPastFinalDate(ctx context.Context, asOf time.Time, states []types.ContractStatus) ([]*contract.Contract, error) {
	query := `SELECT` + contractColumns + `
		FROM contracts
		WHERE tenant_id = $1
		  AND state = ANY($2)
		  AND final_date IS NOT NULL AND final_date <= $3
		  AND status != $4
		ORDER BY final_date, id`

	var contracts []*contract.Contract
	err := r.db.GetQuerier(ctx).SelectContext(ctx, &contracts, query,
		types.GetTenantID(ctx), pq.Array(statesToStrings(states)), asOf, types.StatusDeleted)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list contracts past final date").
			Mark(ierr.ErrDatabase)
	}
	return contracts, nil
}

func statesToStrings(states []types.ContractStatus) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}

func prefixedContractColumns(alias string) string {
	return `
	` + alias + `.id, ` + alias + `.customer_id, ` + alias + `.description,
	` + alias + `.billing_day, ` + alias + `.state, ` + alias + `.final_date,
	` + alias + `.installments, ` + alias + `.tenant_id, ` + alias + `.status,
	` + alias + `.created_at, ` + alias + `.updated_at, ` + alias + `.created_by,
	` + alias + `.updated_by`
}
