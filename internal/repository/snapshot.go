package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/faturo/faturo/internal/domain/snapshot"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/logger"
	"github.com/faturo/faturo/internal/postgres"
	"github.com/faturo/faturo/internal/types"
)

type snapshotRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

const snapshotColumns = `
	id, contract_id, period_id, reference_period, reference_start_date,
	reference_end_date, due_date, issue_date, net_amount, discount_amount,
	tax_amount, installment_number, total_installments, payment_method,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

const snapshotLineColumns = `
	id, snapshot_id, description, origin, quantity, unit_price, total_amount,
	discount_amount, tax_amount,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *snapshotRepository) Create(ctx context.Context, snap *snapshot.BillingSnapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	err := r.db.WithTx(ctx, func(ctx context.Context) error {
		querier := r.db.GetQuerier(ctx)

		_, err := querier.ExecContext(ctx, `
			INSERT INTO billing_snapshots (`+snapshotColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			        $15, $16, $17, $18, $19, $20)`,
			snap.ID, snap.ContractID, snap.PeriodID, snap.ReferencePeriod,
			snap.ReferenceStartDate, snap.ReferenceEndDate, snap.DueDate, snap.IssueDate,
			snap.NetAmount, snap.DiscountAmount, snap.TaxAmount,
			snap.InstallmentNumber, snap.TotalInstallments, snap.PaymentMethod,
			snap.TenantID, snap.Status, snap.CreatedAt, snap.UpdatedAt,
			snap.CreatedBy, snap.UpdatedBy)
		if err != nil {
			return ierr.WithError(err).
				WithHint("Failed to create billing snapshot").
				Mark(ierr.ErrDatabase)
		}

		for _, item := range snap.LineItems {
			_, err := querier.ExecContext(ctx, `
				INSERT INTO billing_snapshot_line_items (`+snapshotLineColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9,
				        $10, $11, $12, $13, $14, $15)`,
				item.ID, item.SnapshotID, item.Description, item.Origin,
				item.Quantity, item.UnitPrice, item.TotalAmount,
				item.DiscountAmount, item.TaxAmount,
				item.TenantID, item.Status, item.CreatedAt, item.UpdatedAt,
				item.CreatedBy, item.UpdatedBy)
			if err != nil {
				return ierr.WithError(err).
					WithHint("Failed to create snapshot line item").
					Mark(ierr.ErrDatabase)
			}
		}
		return nil
	})
	return err
}

func (r *snapshotRepository) GetByPeriodID(ctx context.Context, periodID string) (*snapshot.BillingSnapshot, error) {
	query := `SELECT` + snapshotColumns + `
		FROM billing_snapshots
		WHERE period_id = $1 AND tenant_id = $2 AND status != $3
		ORDER BY created_at DESC
		LIMIT 1`

	var snap snapshot.BillingSnapshot
	err := r.db.GetQuerier(ctx).GetContext(ctx, &snap, query, periodID, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("snapshot not found").
				WithHint("No snapshot is linked to this period").
				WithReportableDetails(map[string]any{
					"period_id": periodID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get snapshot by period").
			Mark(ierr.ErrDatabase)
	}

	if err := r.loadLineItems(ctx, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *snapshotRepository) FindByReference(ctx context.Context, contractID, referenceKey string, start, end time.Time) ([]*snapshot.BillingSnapshot, error) {
	query := `SELECT` + snapshotColumns + `
		FROM billing_snapshots
		WHERE contract_id = $1 AND tenant_id = $2
		  AND reference_period = $3
		  AND reference_start_date <= $5 AND reference_end_date >= $4
		  AND status != $6
		ORDER BY created_at DESC`

	var snaps []*snapshot.BillingSnapshot
	err := r.db.GetQuerier(ctx).SelectContext(ctx, &snaps, query,
		contractID, types.GetTenantID(ctx), referenceKey, start, end, types.StatusDeleted)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to find snapshots by reference period").
			Mark(ierr.ErrDatabase)
	}

	for _, snap := range snaps {
		if err := r.loadLineItems(ctx, snap); err != nil {
			return nil, err
		}
	}
	return snaps, nil
}

func (r *snapshotRepository) loadLineItems(ctx context.Context, snap *snapshot.BillingSnapshot) error {
	query := `SELECT` + snapshotLineColumns + `
		FROM billing_snapshot_line_items
		WHERE snapshot_id = $1 AND tenant_id = $2 AND status != $3
		ORDER BY created_at, id`

	var items []*snapshot.SnapshotLineItem
	err := r.db.GetQuerier(ctx).SelectContext(ctx, &items, query, snap.ID, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to load snapshot line items").
			Mark(ierr.ErrDatabase)
	}
	snap.LineItems = items
	return nil
}
