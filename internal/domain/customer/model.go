package customer

import (
	"github.com/faturo/faturo/internal/types"
)

// Customer represents the customer domain model
type Customer struct {
	ID         string `db:"id" json:"id"`
	ExternalID string `db:"external_id" json:"external_id"`
	Name       string `db:"name" json:"name"`
	Email      string `db:"email" json:"email"`
	Document   string `db:"document" json:"document,omitempty"`
	types.BaseModel
}
