package contract

import (
	"time"

	"github.com/faturo/faturo/internal/types"
)

// Contract represents a tenant's recurring billing agreement. Contracts are
// owned by the contract-editing flows; this engine only reads them.
type Contract struct {
	ID           string               `db:"id" json:"id"`
	CustomerID   string               `db:"customer_id" json:"customer_id"`
	Description  string               `db:"description" json:"description,omitempty"`
	BillingDay   int                  `db:"billing_day" json:"billing_day"`
	State        types.ContractStatus `db:"state" json:"state"`
	FinalDate    *time.Time           `db:"final_date" json:"final_date,omitempty"`
	Installments int                  `db:"installments" json:"installments"`
	types.BaseModel
}

// IsExpiredAsOf reports whether the contract's final date has passed.
// Contracts without a final date never expire by date.
func (c *Contract) IsExpiredAsOf(t time.Time) bool {
	if c.FinalDate == nil {
		return false
	}
	return !c.FinalDate.After(t)
}
