package snapshot

import (
	"time"

	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/types"
	"github.com/shopspring/decimal"
)

// BillingSnapshot is the immutable record of what was actually billed for a
// period: the frozen order. Created exactly once when a period is billed and
// never mutated thereafter.
//
// PeriodID is the explicit foreign key written at creation time. Historical
// snapshots predate it and carry nil; those rows are matched by contract,
// reference month key and date range instead, behind the reader's interface.
type BillingSnapshot struct {
	ID                 string              `db:"id" json:"id"`
	ContractID         string              `db:"contract_id" json:"contract_id"`
	PeriodID           *string             `db:"period_id" json:"period_id,omitempty"`
	ReferencePeriod    string              `db:"reference_period" json:"reference_period"`
	ReferenceStartDate time.Time           `db:"reference_start_date" json:"reference_start_date"`
	ReferenceEndDate   time.Time           `db:"reference_end_date" json:"reference_end_date"`
	DueDate            time.Time           `db:"due_date" json:"due_date"`
	IssueDate          time.Time           `db:"issue_date" json:"issue_date"`
	NetAmount          decimal.Decimal     `db:"net_amount" json:"net_amount"`
	DiscountAmount     decimal.Decimal     `db:"discount_amount" json:"discount_amount"`
	TaxAmount          decimal.Decimal     `db:"tax_amount" json:"tax_amount"`
	InstallmentNumber  *int                `db:"installment_number" json:"installment_number,omitempty"`
	TotalInstallments  *int                `db:"total_installments" json:"total_installments,omitempty"`
	PaymentMethod      string              `db:"payment_method" json:"payment_method,omitempty"`
	LineItems          []*SnapshotLineItem `json:"line_items,omitempty"`
	types.BaseModel
}

func (s *BillingSnapshot) Validate() error {
	if s.ContractID == "" {
		return ierr.NewError("snapshot without contract").
			WithHint("contract_id is required").
			Mark(ierr.ErrValidation)
	}
	if s.ReferenceEndDate.Before(s.ReferenceStartDate) {
		return ierr.NewError("snapshot reference range inverted").
			WithHint("reference_end_date must be on or after reference_start_date").
			Mark(ierr.ErrValidation)
	}
	for _, item := range s.LineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

