package assignment

import (
	"github.com/faturo/faturo/internal/types"
	"github.com/shopspring/decimal"
)

// ContractLineAssignment is a service or product attached to a contract.
// Mutated by the contract-editing flows; read-only to this engine. Only rows
// with IsActive and GenerateBilling set contribute to a projection.
type ContractLineAssignment struct {
	ID                 string           `db:"id" json:"id"`
	ContractID         string           `db:"contract_id" json:"contract_id"`
	Origin             types.LineOrigin `db:"origin" json:"origin"`
	Description        string           `db:"description" json:"description"`
	Quantity           decimal.Decimal  `db:"quantity" json:"quantity"`
	UnitPrice          decimal.Decimal  `db:"unit_price" json:"unit_price"`
	DiscountPercentage decimal.Decimal  `db:"discount_percentage" json:"discount_percentage"`
	DiscountAmount     decimal.Decimal  `db:"discount_amount" json:"discount_amount"`
	TaxRate            decimal.Decimal  `db:"tax_rate" json:"tax_rate"`
	IsActive           bool             `db:"is_active" json:"is_active"`
	GenerateBilling    bool             `db:"generate_billing" json:"generate_billing"`
	types.BaseModel
}

// IsBillable reports whether the assignment contributes to a projection.
func (a *ContractLineAssignment) IsBillable() bool {
	return a.IsActive && a.GenerateBilling
}

// ToBillableLine maps the assignment to aggregator input.
func (a *ContractLineAssignment) ToBillableLine() types.BillableLine {
	return types.BillableLine{
		Description:        a.Description,
		Origin:             a.Origin,
		Quantity:           a.Quantity,
		UnitPrice:          a.UnitPrice,
		DiscountPercentage: a.DiscountPercentage,
		DiscountAmount:     a.DiscountAmount,
		TaxRate:            a.TaxRate,
	}
}
