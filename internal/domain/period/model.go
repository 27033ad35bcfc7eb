package period

import (
	"time"

	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/types"
	"github.com/shopspring/decimal"
)

// BillingPeriod represents one billing interval of a contract, or a standalone
// charge not tied to a contract lifecycle. Created when a contract's billing
// schedule advances. Transitions PENDING→BILLED when a snapshot is produced and
// BILLED→PAID on payment confirmation; immutable once BILLED except for the
// PAID transition and payment metadata.
type BillingPeriod struct {
	ID            string             `db:"id" json:"id"`
	ContractID    *string            `db:"contract_id" json:"contract_id,omitempty"`
	PeriodStart   time.Time          `db:"period_start" json:"period_start"`
	PeriodEnd     time.Time          `db:"period_end" json:"period_end"`
	BillDate      time.Time          `db:"bill_date" json:"bill_date"`
	PeriodStatus  types.PeriodStatus `db:"period_status" json:"period_status"`
	IsStandalone  bool               `db:"is_standalone" json:"is_standalone"`
	OrderNumber   string             `db:"order_number" json:"order_number"`
	AmountPlanned decimal.Decimal    `db:"amount_planned" json:"amount_planned"`
	AmountBilled  *decimal.Decimal   `db:"amount_billed" json:"amount_billed,omitempty"`
	PaymentMethod string             `db:"payment_method" json:"payment_method,omitempty"`
	types.BaseModel
}

// IsFrozen reports whether the period's authoritative data is an immutable snapshot.
func (p *BillingPeriod) IsFrozen() bool {
	return p.PeriodStatus.IsFrozen()
}

func (p *BillingPeriod) Validate() error {
	if err := p.PeriodStatus.Validate(); err != nil {
		return err
	}
	if p.PeriodEnd.Before(p.PeriodStart) {
		return ierr.NewError("period end before period start").
			WithHint("period_end must be on or after period_start").
			Mark(ierr.ErrValidation)
	}
	if !p.IsStandalone && p.ContractID == nil {
		return ierr.NewError("non-standalone period without contract").
			WithHint("contract_id is required unless the period is standalone").
			Mark(ierr.ErrValidation)
	}
	return nil
}
