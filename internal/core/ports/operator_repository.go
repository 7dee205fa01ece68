package ports

import (
	"context"

	"orehaul/internal/core/domain/model/operator"
)

// OperatorRepository defines the persistence contract for crew members.
// Operators are keyed by their national id.
type OperatorRepository interface {
	// Add persists a new operator.
	// The operator must be valid and its national id must not already exist.
	Add(ctx context.Context, o operator.Operator) error

	// Update persists changes to an existing operator, such as roster
	// additions or journal entries.
	Update(ctx context.Context, o operator.Operator) error

	// Get retrieves an operator by national id.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, nationalID string) (operator.Operator, error)
}
