package assignment

import (
	"context"
)

// Repository defines the interface for contract line assignment reads.
// Both listings return only active, billing-eligible rows.
type Repository interface {
	// ListActiveServices retrieves the contract's active service assignments
	ListActiveServices(ctx context.Context, contractID string) ([]*ContractLineAssignment, error)

	// ListActiveProducts retrieves the contract's active product assignments
	ListActiveProducts(ctx context.Context, contractID string) ([]*ContractLineAssignment, error)
}
