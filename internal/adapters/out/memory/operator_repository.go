package memory

import (
	"context"
	"fmt"
	"sync"

	"orehaul/internal/core/domain/model/operator"
	"orehaul/internal/pkg/errs"
)

// ErrOperatorAlreadyRegistered is returned when adding an operator whose
// national id is already present in the repository.
var ErrOperatorAlreadyRegistered = fmt.Errorf("%w: operator already registered", errs.ErrAlreadyExists)

// OperatorRepository is the in-memory implementation of ports.OperatorRepository.
// Operators are keyed by national id.
type OperatorRepository struct {
	mu        sync.RWMutex
	operators map[string]operator.Operator
}

// NewOperatorRepository creates an empty operator repository.
func NewOperatorRepository() *OperatorRepository {
	return &OperatorRepository{
		operators: make(map[string]operator.Operator),
	}
}

// Add stores a new operator. Duplicate national ids are rejected.
func (r *OperatorRepository) Add(_ context.Context, o operator.Operator) error {
	if o == nil {
		return errs.NewValueIsRequiredError("operator")
	}
	if err := o.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.operators[o.NationalID()]; exists {
		return fmt.Errorf("%w: %s", ErrOperatorAlreadyRegistered, o.NationalID())
	}

	r.operators[o.NationalID()] = o
	return nil
}

// Update replaces the stored operator with the given one.
func (r *OperatorRepository) Update(_ context.Context, o operator.Operator) error {
	if o == nil {
		return errs.NewValueIsRequiredError("operator")
	}
	if err := o.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.operators[o.NationalID()]; !exists {
		return errs.NewObjectNotFoundError("nationalID", o.NationalID())
	}

	r.operators[o.NationalID()] = o
	return nil
}

// Get returns the operator with the given national id.
func (r *OperatorRepository) Get(_ context.Context, nationalID string) (operator.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, exists := r.operators[nationalID]
	if !exists {
		return nil, errs.NewObjectNotFoundError("nationalID", nationalID)
	}
	return o, nil
}
