package commands

import (
	"context"
	"errors"

	"orehaul/internal/core/ports"
	"orehaul/internal/pkg/errs"
	"orehaul/internal/pkg/metrics"
)

// ErrOperationNotFound is returned by operation lifecycle handlers when the
// requested operation id is unknown.
var ErrOperationNotFound = errors.New("operation not found")

// ValidateOperationCommandHandler handles the capacity check of an open
// operation. Validation never mutates the operation; it only reports
// whether the load fits the assigned vehicle.
//
// Example:
//
//	handler := NewValidateOperationCommandHandler(operationRepository, appMetrics)
//	cmd, _ := NewValidateOperationCommand(operationID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrCapacityExceeded) {
//	    log.Println("Load exceeds vehicle capacity")
//	}
type ValidateOperationCommandHandler struct {
	operationRepository ports.OperationRepository
	metrics             *metrics.Metrics
}

// NewValidateOperationCommandHandler creates a handler for operation
// capacity validation.
func NewValidateOperationCommandHandler(
	operationRepository ports.OperationRepository,
	m *metrics.Metrics,
) ValidateOperationCommandHandler {
	return ValidateOperationCommandHandler{
		operationRepository: operationRepository,
		metrics:             m,
	}
}

// Handle processes the validation command.
// Returns ErrOperationNotFound for unknown ids and the domain's capacity
// error when the load exceeds the vehicle capacity. Capacity rejections are
// counted in the validation failure metric.
func (h ValidateOperationCommandHandler) Handle(ctx context.Context, cmd ValidateOperationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	operation, err := h.operationRepository.Get(ctx, cmd.OperationID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOperationNotFound
	}
	if err != nil {
		return err
	}

	if err := operation.ValidateWeight(); err != nil {
		if errors.Is(err, errs.ErrCapacityExceeded) {
			h.metrics.RecordValidationFailure("capacity_exceeded")
		}
		return err
	}

	return nil
}
