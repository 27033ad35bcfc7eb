package service

import (
	"github.com/faturo/faturo/internal/domain/snapshot"
	"github.com/faturo/faturo/internal/types"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeLine applies the canonical per-line arithmetic:
//
//	subtotal = quantity * unit_price
//	discount = subtotal * discount_percentage + discount_amount
//	after    = max(0, subtotal - discount)
//	tax      = after * tax_rate / 100
//	total    = after + tax
//
// Discount percentages above 1 are legacy percentage points and are divided by
// 100 first; values at or below 1 are already decimal fractions. Both a 0.10
// and a 10 therefore discount ten percent.
func ComputeLine(line types.BillableLine) types.LineComputation {
	subtotal := line.Quantity.Mul(line.UnitPrice)

	pct := normalizeDiscountPercentage(line.DiscountPercentage)
	discount := subtotal.Mul(pct).Add(line.DiscountAmount)

	afterDiscount := decimal.Max(decimal.Zero, subtotal.Sub(discount))
	tax := afterDiscount.Mul(line.TaxRate).Div(oneHundred)

	return types.LineComputation{
		Line:      line,
		Subtotal:  subtotal,
		Discount:  discount,
		Tax:       tax,
		LineTotal: afterDiscount.Add(tax),
	}
}

// Aggregate computes totals over a collection of billable lines, partitioned
// into service and product origin. Pure arithmetic: no side effects, never
// fails. Decimal zero values cover missing numeric fields.
func Aggregate(lines []types.BillableLine) types.Totals {
	totals := types.NewTotals()
	for _, line := range lines {
		c := ComputeLine(line)
		if line.Origin == types.LineOriginProduct {
			totals.Products = totals.Products.Add(c.LineTotal)
		} else {
			totals.Services = totals.Services.Add(c.LineTotal)
		}
		totals.Discounts = totals.Discounts.Add(c.Discount)
		totals.Taxes = totals.Taxes.Add(c.Tax)
	}
	totals.Net = totals.Services.Add(totals.Products)
	return totals
}

// AggregateSnapshot sums a snapshot's frozen line items. Frozen amounts are
// historical fact and are never recomputed, only partitioned and summed.
func AggregateSnapshot(items []*snapshot.SnapshotLineItem) types.Totals {
	totals := types.NewTotals()
	for _, item := range items {
		if item.Origin == types.LineOriginProduct {
			totals.Products = totals.Products.Add(item.TotalAmount)
		} else {
			totals.Services = totals.Services.Add(item.TotalAmount)
		}
		totals.Discounts = totals.Discounts.Add(item.DiscountAmount)
		totals.Taxes = totals.Taxes.Add(item.TaxAmount)
	}
	totals.Net = totals.Services.Add(totals.Products)
	return totals
}

// normalizeDiscountPercentage maps legacy percentage-point values (> 1) to
// decimal fractions. A stored 10 means 10%, a stored 0.10 also means 10%,
// and a stored 1.5 normalizes to 0.015.
func normalizeDiscountPercentage(pct decimal.Decimal) decimal.Decimal {
	if pct.GreaterThan(decimal.NewFromInt(1)) {
		return pct.Div(oneHundred)
	}
	return pct
}
