package ports

import (
	"context"

	"orehaul/internal/core/domain/model/transport"
)

// OperationRepository defines the persistence contract for transport operations.
type OperationRepository interface {
	// Add persists a new operation.
	// The operation must be valid and not already exist in the repository.
	Add(ctx context.Context, operation *transport.Operation) error

	// Update persists changes to an existing operation, such as a status
	// transition.
	Update(ctx context.Context, operation *transport.Operation) error

	// Get retrieves an operation by its unique identifier.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id uint64) (*transport.Operation, error)

	// GetAllOpen retrieves every operation that has not been finalized yet,
	// in creation order.
	GetAllOpen(ctx context.Context) ([]*transport.Operation, error)
}
