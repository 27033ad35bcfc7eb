package types

import (
	"github.com/shopspring/decimal"
)

// LineOrigin distinguishes service-sourced line items from product-sourced ones.
type LineOrigin string

const (
	LineOriginService LineOrigin = "SERVICE"
	LineOriginProduct LineOrigin = "PRODUCT"
)

func (o LineOrigin) String() string {
	return string(o)
}

// BillableLine is the aggregator's input: one billable row, either from a live
// contract assignment or from a frozen snapshot line item.
type BillableLine struct {
	Description        string          `json:"description"`
	Origin             LineOrigin      `json:"origin"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
}

// LineComputation is the aggregator's per-line output.
type LineComputation struct {
	Line      BillableLine    `json:"line"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Tax       decimal.Decimal `json:"tax"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Totals is the aggregate result over a collection of billable lines.
type Totals struct {
	Services  decimal.Decimal `json:"services"`
	Products  decimal.Decimal `json:"products"`
	Discounts decimal.Decimal `json:"discounts"`
	Taxes     decimal.Decimal `json:"taxes"`
	Net       decimal.Decimal `json:"net"`
}

// NewTotals returns a zero-valued Totals. decimal.Decimal zero values are
// already usable, this exists for readability at call sites.
func NewTotals() Totals {
	return Totals{
		Services:  decimal.Zero,
		Products:  decimal.Zero,
		Discounts: decimal.Zero,
		Taxes:     decimal.Zero,
		Net:       decimal.Zero,
	}
}
