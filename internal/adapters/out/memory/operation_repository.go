package memory

import (
	"context"
	"fmt"
	"sync"

	"orehaul/internal/core/domain/model/transport"
	"orehaul/internal/pkg/errs"
)

// ErrOperationAlreadyRegistered is returned when adding an operation whose
// id is already present in the repository.
var ErrOperationAlreadyRegistered = fmt.Errorf("%w: operation already registered", errs.ErrAlreadyExists)

// OperationRepository is the in-memory implementation of ports.OperationRepository.
type OperationRepository struct {
	mu         sync.RWMutex
	operations map[uint64]*transport.Operation
	ids        []uint64
}

// NewOperationRepository creates an empty operation repository.
func NewOperationRepository() *OperationRepository {
	return &OperationRepository{
		operations: make(map[uint64]*transport.Operation),
	}
}

// Add stores a new operation. Duplicate ids are rejected.
func (r *OperationRepository) Add(_ context.Context, operation *transport.Operation) error {
	if operation == nil {
		return errs.NewValueIsRequiredError("operation")
	}
	if err := operation.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.operations[operation.ID()]; exists {
		return fmt.Errorf("%w: %d", ErrOperationAlreadyRegistered, operation.ID())
	}

	r.operations[operation.ID()] = operation
	r.ids = append(r.ids, operation.ID())
	return nil
}

// Update replaces the stored operation with the given one.
func (r *OperationRepository) Update(_ context.Context, operation *transport.Operation) error {
	if operation == nil {
		return errs.NewValueIsRequiredError("operation")
	}
	if err := operation.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.operations[operation.ID()]; !exists {
		return errs.NewObjectNotFoundError("operationID", operation.ID())
	}

	r.operations[operation.ID()] = operation
	return nil
}

// Get returns the operation with the given id.
func (r *OperationRepository) Get(_ context.Context, id uint64) (*transport.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	operation, exists := r.operations[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("operationID", id)
	}
	return operation, nil
}

// GetAllOpen returns every operation that is not finalized, in creation order.
func (r *OperationRepository) GetAllOpen(_ context.Context) ([]*transport.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var open []*transport.Operation
	for _, id := range r.ids {
		if operation := r.operations[id]; !operation.Finalized() {
			open = append(open, operation)
		}
	}
	return open, nil
}
