package dto

import (
	"time"

	"github.com/faturo/faturo/internal/domain/contract"
	ierr "github.com/faturo/faturo/internal/errors"
	"github.com/faturo/faturo/internal/types"
)

// BoardCard is one contract on the lifecycle board.
type BoardCard struct {
	ContractID   string               `json:"contract_id"`
	CustomerID   string               `json:"customer_id"`
	Description  string               `json:"description,omitempty"`
	BillingDay   int                  `json:"billing_day"`
	State        types.ContractStatus `json:"state"`
	FinalDate    *time.Time           `json:"final_date,omitempty"`
	Installments int                  `json:"installments"`
}

// NewBoardCard maps a contract to its board representation.
func NewBoardCard(c *contract.Contract) BoardCard {
	return BoardCard{
		ContractID:   c.ID,
		CustomerID:   c.CustomerID,
		Description:  c.Description,
		BillingDay:   c.BillingDay,
		State:        c.State,
		FinalDate:    c.FinalDate,
		Installments: c.Installments,
	}
}

// BoardResponse is the four-bucket lifecycle board. Buckets are derived, not
// stored, and are mutually exclusive by construction (a contract already
// charged this month cannot sit in to-invoice-today or pending).
type BoardResponse struct {
	ToInvoiceToday    []BoardCard `json:"to_invoice_today"`
	Pending           []BoardCard `json:"pending"`
	InvoicedThisMonth []BoardCard `json:"invoiced_this_month"`
	ToRenew           []BoardCard `json:"to_renew"`
}

// UpdateChargeStatusRequest flips an issued charge's payment status.
type UpdateChargeStatusRequest struct {
	ContractID string             `json:"contract_id" validate:"required"`
	ChargeID   string             `json:"charge_id" validate:"required"`
	Status     types.ChargeStatus `json:"status" validate:"required"`
}

func (r *UpdateChargeStatusRequest) Validate() error {
	if r.ContractID == "" {
		return ierr.NewError("contract_id is required").
			WithHint("Provide the contract the charge belongs to").
			Mark(ierr.ErrValidation)
	}
	if r.ChargeID == "" {
		return ierr.NewError("charge_id is required").
			WithHint("Provide the charge to update").
			Mark(ierr.ErrValidation)
	}
	return r.Status.Validate()
}
