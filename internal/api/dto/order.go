package dto

import (
	"time"

	"github.com/faturo/faturo/internal/types"
	"github.com/shopspring/decimal"
)

// OrderLineItem is one row of a resolved billing order, either frozen
// (from a snapshot) or projected (from current assignments).
type OrderLineItem struct {
	Description    string           `json:"description"`
	Origin         types.LineOrigin `json:"origin"`
	Quantity       decimal.Decimal  `json:"quantity"`
	UnitPrice      decimal.Decimal  `json:"unit_price"`
	DiscountAmount decimal.Decimal  `json:"discount_amount"`
	TaxAmount      decimal.Decimal  `json:"tax_amount"`
	TotalAmount    decimal.Decimal  `json:"total_amount"`
}

// BillingOrderResponse is the resolved view of one billing period: snapshot
// data when the period is frozen, a live projection otherwise.
type BillingOrderResponse struct {
	PeriodID          string             `json:"period_id"`
	ContractID        string             `json:"contract_id"`
	CustomerName      string             `json:"customer_name"`
	OrderNumber       string             `json:"order_number"`
	PeriodStart       time.Time          `json:"period_start"`
	PeriodEnd         time.Time          `json:"period_end"`
	PeriodStatus      types.PeriodStatus `json:"period_status"`
	AmountPlanned     decimal.Decimal    `json:"amount_planned"`
	AmountBilled      *decimal.Decimal   `json:"amount_billed,omitempty"`
	TotalServices     decimal.Decimal    `json:"total_services"`
	TotalProducts     decimal.Decimal    `json:"total_products"`
	TotalDiscounts    decimal.Decimal    `json:"total_discounts"`
	TotalTaxes        decimal.Decimal    `json:"total_taxes"`
	InstallmentNumber *int               `json:"installment_number,omitempty"`
	TotalInstallments *int               `json:"total_installments,omitempty"`
	PaymentMethod     string             `json:"payment_method,omitempty"`
	IsFrozen          bool               `json:"is_frozen"`
	Items             []OrderLineItem    `json:"items"`
}
