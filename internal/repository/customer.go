package repository

import (
	"context"
	"database/sql"

	"github.com/faturo/faturo/internal/domain/customer"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/logger"
	"github.com/faturo/faturo/internal/postgres"
	"github.com/faturo/faturo/internal/types"
)

type customerRepository struct {
	db  *postgres.DB
	log *logger.Logger
}

const customerColumns = `
	id, external_id, name, email, document,
	tenant_id, status, created_at, updated_at, created_by, updated_by`

func (r *customerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	query := `SELECT` + customerColumns + `
		FROM customers
		WHERE id = $1 AND tenant_id = $2 AND status != $3`

	var c customer.Customer
	err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("customer not found").
				WithHint("Customer not found").
				WithReportableDetails(map[string]any{
					"customer_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get customer").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}
