package types

import (
	"context"
	"time"
)

// BaseModel carries the audit and tenancy columns every persisted billing
// entity embeds. TenantID scopes every repository predicate; Status is the
// soft-delete row state, distinct from the business lifecycle statuses
// (PeriodStatus, ContractStatus, ChargeStatus) the entities carry themselves.
type BaseModel struct {
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	Status    Status    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
	CreatedBy string    `db:"created_by" json:"created_by"`
	UpdatedBy string    `db:"updated_by" json:"updated_by"`
}

// GetDefaultBaseModel stamps a new row with the tenant and user carried in ctx.
// Callers seed it before handing the entity to a repository Create.
func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := time.Now().UTC()
	return BaseModel{
		TenantID:  GetTenantID(ctx),
		Status:    StatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: GetUserID(ctx),
		UpdatedBy: GetUserID(ctx),
	}
}
