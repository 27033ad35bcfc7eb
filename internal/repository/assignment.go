package repository

import (
	"context"

	"github.com/faturo/faturo/internal/domain/assignment"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/logger"
	"github.com/faturo/faturo/internal/postgres"
	"github.com/faturo/faturo/internal/types"
)

type assignmentRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

const assignmentColumns = `
	id, contract_id, origin, description, quantity, unit_price,
	discount_percentage, discount_amount, tax_rate, is_active, generate_billing,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *assignmentRepository) ListActiveServices(ctx context.Context, contractID string) ([]*assignment.ContractLineAssignment, error) {
	return r.listActive(ctx, contractID, types.LineOriginService)
}

func (r *assignmentRepository) ListActiveProducts(ctx context.Context, contractID string) ([]*assignment.ContractLineAssignment, error) {
	return r.listActive(ctx, contractID, types.LineOriginProduct)
}

func (r *assignmentRepository) listActive(ctx context.Context, contractID string, origin types.LineOrigin) ([]*assignment.ContractLineAssignment, error) {
	query := `SELECT` + assignmentColumns + `
		FROM contract_line_assignments
		WHERE contract_id = $1 AND tenant_id = $2 AND origin = $3
		  AND is_active AND generate_billing
		  AND status != $4
		ORDER BY created_at, id`

	var assignments []*assignment.ContractLineAssignment
	err := r.db.GetQuerier(ctx).SelectContext(ctx, &assignments, query,
		contractID, types.GetTenantID(ctx), origin, types.StatusDeleted)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list contract line assignments").
			WithReportableDetails(map[string]any{
				"contract_id": contractID,
				"origin":      origin,
			}).
			Mark(ierr.ErrDatabase)
	}
	return assignments, nil
}
