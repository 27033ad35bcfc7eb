package customer

import (
	"context"
)

// Repository defines the interface for customer persistence operations
type Repository interface {
	// Get retrieves a customer by ID
	Get(ctx context.Context, id string) (*Customer, error)
}
