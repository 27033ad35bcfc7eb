package snapshot

import (
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/types"
	"github.com/shopspring/decimal"
)

// SnapshotLineItem is a single frozen line of a billing snapshot. Amounts are
// stored as billed; they are summed, never recomputed.
type SnapshotLineItem struct {
	ID             string           `db:"id" json:"id"`
	SnapshotID     string           `db:"snapshot_id" json:"snapshot_id"`
	Description    string           `db:"description" json:"description"`
	Origin         types.LineOrigin `db:"origin" json:"origin"`
	Quantity       decimal.Decimal  `db:"quantity" json:"quantity"`
	UnitPrice      decimal.Decimal  `db:"unit_price" json:"unit_price"`
	TotalAmount    decimal.Decimal  `db:"total_amount" json:"total_amount"`
	DiscountAmount decimal.Decimal  `db:"discount_amount" json:"discount_amount"`
	TaxAmount      decimal.Decimal  `db:"tax_amount" json:"tax_amount"`
	types.BaseModel
}

func (i *SnapshotLineItem) Validate() error {
	if i.Quantity.IsNegative() {
		return ierr.NewError("snapshot line item validation failed").
			WithHint("quantity must be non negative").
			Mark(ierr.ErrValidation)
	}
	if i.UnitPrice.IsNegative() {
		return ierr.NewError("snapshot line item validation failed").
			WithHint("unit_price must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
