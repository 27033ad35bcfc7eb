package repository

import (
	"context"

	"github.com/faturo/faturo/internal/domain/charge"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/logger"
	"github.com/faturo/faturo/internal/postgres"
	"github.com/faturo/faturo/internal/types"
)

type chargeRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

const chargeColumns = `
	id, contract_id, charge_status,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *chargeRepository) Create(ctx context.Context, c *charge.ChargeRecord) error {
	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, `
		INSERT INTO charge_records (`+chargeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.ContractID, c.ChargeStatus,
		c.TenantID, c.Status, c.CreatedAt, c.UpdatedAt, c.CreatedBy, c.UpdatedBy)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create charge record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *chargeRepository) ExistsInWindow(ctx context.Context, contractID string, window types.MonthWindow) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM charge_records
		WHERE contract_id = $1 AND tenant_id = $2
		  AND created_at >= $3 AND created_at < $4
		  AND status != $5)`

	var exists bool
	err := r.db.GetQuerier(ctx).GetContext(ctx, &exists, query,
		contractID, types.GetTenantID(ctx), window.Start, window.End, types.StatusDeleted)
	if err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check charges in window").
			Mark(ierr.ErrDatabase)
	}
	return exists, nil
}

func (r *chargeRepository) UpdateStatus(ctx context.Context, chargeID string, status types.ChargeStatus) error {
	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, `
		UPDATE charge_records
		SET charge_status = $1, updated_at = now(), updated_by = $2
		WHERE id = $3 AND tenant_id = $4 AND status != $5`,
		status, types.GetUserID(ctx), chargeID, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update charge status").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update charge status").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("charge record not found").
			WithHint("Charge record not found").
			WithReportableDetails(map[string]any{
				"charge_id": chargeID,
			}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
