package charge

import (
	"github.com/faturo/faturo/internal/types"
)

// ChargeRecord is a minimal existence marker for an issued charge. The engine
// never loads charge content beyond this: bucket queries only test presence
// within a month window and flip the payment status.
type ChargeRecord struct {
	ID           string             `db:"id" json:"id"`
	ContractID   string             `db:"contract_id" json:"contract_id"`
	ChargeStatus types.ChargeStatus `db:"charge_status" json:"charge_status"`
	types.BaseModel
}
