package service

import (
	"testing"

	"github.com/faturo/faturo/internal/domain/snapshot"
	"github.com/faturo/faturo/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name         string
		line         types.BillableLine
		wantSubtotal string
		wantDiscount string
		wantTax      string
		wantTotal    string
	}{
		{
			name: "no discount no tax",
			line: types.BillableLine{
				Quantity:  decimal.NewFromInt(2),
				UnitPrice: decimal.NewFromInt(100),
			},
			wantSubtotal: "200",
			wantDiscount: "0",
			wantTax:      "0",
			wantTotal:    "200",
		},
		{
			name: "tax on discounted amount",
			line: types.BillableLine{
				Quantity:       decimal.NewFromInt(2),
				UnitPrice:      decimal.NewFromInt(100),
				DiscountAmount: decimal.NewFromInt(50),
				TaxRate:        decimal.NewFromInt(10),
			},
			wantSubtotal: "200",
			wantDiscount: "50",
			wantTax:      "15",
			wantTotal:    "165",
		},
		{
			name: "fractional percentage discounts ten percent",
			line: types.BillableLine{
				Quantity:           decimal.NewFromInt(10),
				UnitPrice:          decimal.NewFromInt(100),
				DiscountPercentage: decimal.RequireFromString("0.10"),
			},
			wantSubtotal: "1000",
			wantDiscount: "100",
			wantTax:      "0",
			wantTotal:    "900",
		},
		{
			name: "legacy percentage points discount ten percent",
			line: types.BillableLine{
				Quantity:           decimal.NewFromInt(10),
				UnitPrice:          decimal.NewFromInt(100),
				DiscountPercentage: decimal.NewFromInt(10),
			},
			wantSubtotal: "1000",
			wantDiscount: "100",
			wantTax:      "0",
			wantTotal:    "900",
		},
		{
			name: "one point five means one and a half percent",
			line: types.BillableLine{
				Quantity:           decimal.NewFromInt(10),
				UnitPrice:          decimal.NewFromInt(100),
				DiscountPercentage: decimal.RequireFromString("1.5"),
			},
			wantSubtotal: "1000",
			wantDiscount: "15",
			wantTax:      "0",
			wantTotal:    "985",
		},
		{
			name: "percentage and absolute discounts stack",
			line: types.BillableLine{
				Quantity:           decimal.NewFromInt(10),
				UnitPrice:          decimal.NewFromInt(100),
				DiscountPercentage: decimal.NewFromInt(10),
				DiscountAmount:     decimal.NewFromInt(25),
			},
			wantSubtotal: "1000",
			wantDiscount: "125",
			wantTax:      "0",
			wantTotal:    "875",
		},
		{
			name: "discount larger than subtotal clamps at zero",
			line: types.BillableLine{
				Quantity:       decimal.NewFromInt(1),
				UnitPrice:      decimal.NewFromInt(100),
				DiscountAmount: decimal.NewFromInt(500),
				TaxRate:        decimal.NewFromInt(18),
			},
			wantSubtotal: "100",
			wantDiscount: "500",
			wantTax:      "0",
			wantTotal:    "0",
		},
		{
			name:         "zero value line",
			line:         types.BillableLine{},
			wantSubtotal: "0",
			wantDiscount: "0",
			wantTax:      "0",
			wantTotal:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComputeLine(tt.line)
			assert.True(t, c.Subtotal.Equal(decimal.RequireFromString(tt.wantSubtotal)),
				"subtotal = %s, want %s", c.Subtotal, tt.wantSubtotal)
			assert.True(t, c.Discount.Equal(decimal.RequireFromString(tt.wantDiscount)),
				"discount = %s, want %s", c.Discount, tt.wantDiscount)
			assert.True(t, c.Tax.Equal(decimal.RequireFromString(tt.wantTax)),
				"tax = %s, want %s", c.Tax, tt.wantTax)
			assert.True(t, c.LineTotal.Equal(decimal.RequireFromString(tt.wantTotal)),
				"total = %s, want %s", c.LineTotal, tt.wantTotal)
		})
	}
}

func TestAggregatePartitionsByOrigin(t *testing.T) {
	lines := []types.BillableLine{
		{
			Origin:    types.LineOriginService,
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(300),
			TaxRate:   decimal.NewFromInt(10),
		},
		{
			Origin:    types.LineOriginService,
			Quantity:  decimal.NewFromInt(2),
			UnitPrice: decimal.NewFromInt(50),
		},
		{
			Origin:             types.LineOriginProduct,
			Quantity:           decimal.NewFromInt(4),
			UnitPrice:          decimal.NewFromInt(25),
			DiscountPercentage: decimal.NewFromInt(10),
		},
	}

	totals := Aggregate(lines)

	assert.Equal(t, "430", totals.Services.String())
	assert.Equal(t, "90", totals.Products.String())
	assert.Equal(t, "10", totals.Discounts.String())
	assert.Equal(t, "30", totals.Taxes.String())
	assert.Equal(t, "520", totals.Net.String())
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)

	assert.True(t, totals.Services.IsZero())
	assert.True(t, totals.Products.IsZero())
	assert.True(t, totals.Discounts.IsZero())
	assert.True(t, totals.Taxes.IsZero())
	assert.True(t, totals.Net.IsZero())
}

// Frozen line amounts are summed as stored even when the stored values do not
// match what the canonical arithmetic would produce today.
func TestAggregateSnapshotSumsStoredAmounts(t *testing.T) {
	items := []*snapshot.SnapshotLineItem{
		{
			Origin:      types.LineOriginService,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(999),
			TotalAmount: decimal.NewFromInt(120),
			TaxAmount:   decimal.NewFromInt(20),
		},
		{
			Origin:         types.LineOriginProduct,
			TotalAmount:    decimal.NewFromInt(80),
			DiscountAmount: decimal.NewFromInt(5),
		},
	}

	totals := AggregateSnapshot(items)

	assert.Equal(t, "120", totals.Services.String())
	assert.Equal(t, "80", totals.Products.String())
	assert.Equal(t, "5", totals.Discounts.String())
	assert.Equal(t, "20", totals.Taxes.String())
	assert.Equal(t, "200", totals.Net.String())
}

func TestNormalizeDiscountPercentage(t *testing.T) {
	assert.Equal(t, "0.1", normalizeDiscountPercentage(decimal.RequireFromString("0.1")).String())
	assert.Equal(t, "0.1", normalizeDiscountPercentage(decimal.NewFromInt(10)).String())
	assert.Equal(t, "1", normalizeDiscountPercentage(decimal.NewFromInt(1)).String())
	assert.Equal(t, "0.015", normalizeDiscountPercentage(decimal.RequireFromString("1.5")).String())
	assert.Equal(t, "0", normalizeDiscountPercentage(decimal.Zero).String())
}
